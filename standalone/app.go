package standalone

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justdots/dots/assets"
	"github.com/justdots/dots/content"
	"github.com/justdots/dots/standalone/screens"
	"github.com/justdots/dots/standalone/storage"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
	"golang.design/x/clipboard"
)

// dataDirName names the per-user data directory.
const dataDirName = "dots"

// configFileName is shown on the error screen.
const configFileName = "config.json"

// Options are the command-line overrides of Run. Zero values defer to the
// saved config.
type Options struct {
	AssetPath     string // folder or archive with dots/ and the logo
	DataDir       string // replaces the per-OS data directory
	Lang          string // display language, not persisted
	ReducedMotion bool   // the user prefers reduced motion
}

// App is the main application struct that implements ebiten.Game
type App struct {
	ui   *ebitenui.UI
	opts Options

	// State management
	state AppState

	// Data
	config *storage.Config
	lang   content.Lang

	// Screens
	posterScreen *screens.PosterScreen
	termsScreen  *screens.TermsScreen
	errorScreen  *screens.ErrorScreen

	// Poster images and the timers that drive them
	scheduler *FrameScheduler
	media     *Media
	source    assets.Source
	picker    *AssetPicker

	// UI managers
	notification      *Notification
	screenshotManager *ScreenshotManager
	inputManager      *InputManager

	clipboardOnce sync.Once
	clipboardErr  error

	// Error state
	configLoadFailed bool // True if config.json failed to load (don't overwrite on exit)

	// Window tracking for persistence and responsive layouts
	windowX, windowY   int
	windowWidth        int
	windowHeight       int
	lastWindowedWidth  int // Last non-fullscreen width (physical pixels)
	lastWindowedHeight int // Last non-fullscreen height (physical pixels)
	lastBuildWidth     int // Track width used for last UI build

	// Screenshot pending flag (set in Update, processed in Draw)
	screenshotPending bool

	// Rebuild pending flag (processed at the start of the next Update)
	rebuildPending bool

	// HiDPI: current device scale factor tracked across Layout calls
	currentDPIScale float64

	// Fullscreen: track state so it can be saved on exit even if macOS
	// has already left native fullscreen by the time saveWindowState runs.
	lastFullscreenState bool
}

// Run is the public entry point for the poster window. It initializes
// storage, configures the window, creates the app, and starts the Ebiten
// game loop.
func Run(opts Options) error {
	storage.Init(dataDirName)
	if opts.DataDir != "" {
		storage.SetBaseDir(opts.DataDir)
	}

	// Configure window
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(storage.MinWindowWidth, storage.MinWindowHeight, -1, -1)

	app, err := newApp(opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(content.NewPoster(app.lang, 0).WindowTitle)

	// Restore window size from saved config (before RunGame to avoid resize flash)
	width, height, x, y, fullscreen := app.GetWindowConfig()
	ebiten.SetWindowSize(max(width, storage.MinWindowWidth), max(height, storage.MinWindowHeight))

	// Restore window position if previously saved
	if x != nil && y != nil {
		ebiten.SetWindowPosition(*x, *y)
	}

	// Restore fullscreen state
	if fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		return err
	}

	app.SaveAndClose()
	return nil
}

// newApp creates and initializes the application.
func newApp(opts Options) (*App, error) {
	app := &App{
		state:             StatePoster,
		opts:              opts,
		scheduler:         NewFrameScheduler(),
		picker:            NewAssetPicker(),
		notification:      NewNotification(),
		screenshotManager: NewScreenshotManager(),
		inputManager:      NewInputManager(),
	}

	// Ensure directory structure exists
	if err := storage.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Warn("failed to create config", "err", err)
	}

	app.initScreens()

	config, err := storage.LoadConfig()
	if err != nil {
		// JSON parse error - show error screen
		log.Error("config load failed", "err", err)
		app.state = StateError
		app.configLoadFailed = true // Don't overwrite the file on exit
		app.config = storage.DefaultConfig()
		app.lang = app.resolveLang()
		app.errorScreen.SetError(configFileName, app.handleDeleteAndContinue)
		app.errorScreen.OnEnter()
		app.rebuildCurrentScreen()
		return app, nil
	}
	app.config = config

	// Validate config values against allowed ranges
	if validationErrors := storage.ValidateConfig(app.config, style.ThemeNames()); len(validationErrors) > 0 {
		log.Warn("config has invalid values", "count", len(validationErrors))
		app.state = StateError
		app.configLoadFailed = true
		app.lang = app.resolveLang()
		app.errorScreen.SetValidationError(configFileName, validationErrors, app.handleResetAndContinue)
		app.errorScreen.OnEnter()
		app.rebuildCurrentScreen()
		return app, nil
	}

	app.startPoster()
	return app, nil
}

// resolveLang picks the command-line language over the saved one.
func (a *App) resolveLang() content.Lang {
	if a.opts.Lang != "" {
		return content.ParseLang(a.opts.Lang)
	}
	return content.ParseLang(a.config.Language)
}

// startPoster applies the config, opens the asset pack, and shows the poster.
func (a *App) startPoster() {
	style.ApplyThemeByName(a.config.Theme)
	style.ApplyFontSize(storage.ValidFontSize(a.config.FontSize))
	a.lang = a.resolveLang()
	if reducedMotionIgnored(a.opts, a.config.Gallery) {
		log.Debug("reduced motion requested but gallery.respectReducedMotion is false; gallery keeps advancing")
	}

	path := a.opts.AssetPath
	if path == "" {
		path = storage.ResolveAssetPath(a.config.Gallery.AssetPath)
	}
	var src assets.Source
	if path != "" {
		var err error
		src, err = assets.OpenSource(path)
		if err != nil {
			log.Warn("asset pack unavailable, using placeholders", "path", path, "err", err)
			src = nil
		} else {
			log.Info("asset pack opened", "path", path, "dots", assets.CountIn(src, "dots"))
		}
	}
	a.setMedia(src)

	a.state = StatePoster
	a.posterScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// reducedMotionIgnored reports whether --reduced-motion was given while the
// config tells the gallery to ignore it.
func reducedMotionIgnored(opts Options, cfg storage.GalleryConfig) bool {
	return opts.ReducedMotion && !cfg.RespectReducedMotion
}

// setMedia replaces the poster images with ones drawn from src.
func (a *App) setMedia(src assets.Source) {
	if a.media != nil {
		a.media.Close()
		a.media.Wait()
	}
	if a.source != nil {
		if err := a.source.Close(); err != nil {
			log.Warn("failed to close asset pack", "err", err)
		}
	}
	a.source = src

	a.media = NewMedia(src, a.config.Gallery, MediaDeps{
		Scheduler:     a.scheduler,
		ReducedMotion: func() bool { return a.opts.ReducedMotion },
		WindowWidth:   a.GetWindowWidth,
	})
	a.media.SetLanguage(a.lang)
	a.media.Mount()
}

// GetWindowConfig returns the saved window dimensions, position, and fullscreen state from config.
// This should be called before RunGame to set the initial window size.
func (a *App) GetWindowConfig() (width, height int, x, y *int, fullscreen bool) {
	return a.config.Window.Width, a.config.Window.Height, a.config.Window.X, a.config.Window.Y, a.config.Window.Fullscreen
}

// saveWindowState saves current window position and size to config
func (a *App) saveWindowState() {
	// Don't overwrite config if it failed to load (user may want to fix it manually)
	if a.configLoadFailed {
		return
	}

	// lastWindowedWidth/Height are only set when not in fullscreen, so if the
	// app was fullscreen for its entire lifetime they remain 0.
	if a.lastWindowedWidth == 0 || a.lastWindowedHeight == 0 {
		return
	}

	// Use lastFullscreenState instead of IsFullscreen() because macOS exits
	// native fullscreen before this handler runs on Cmd+Q.
	s := style.DPIScale()
	a.config.Window.Width = int(float64(a.lastWindowedWidth) / s)
	a.config.Window.Height = int(float64(a.lastWindowedHeight) / s)
	a.config.Window.X = &a.windowX
	a.config.Window.Y = &a.windowY
	a.config.Window.Fullscreen = a.lastFullscreenState

	a.saveConfig()
}

func (a *App) saveConfig() {
	if a.configLoadFailed {
		return
	}
	if err := storage.SaveConfig(a.config); err != nil {
		log.Warn("failed to save config", "err", err)
	}
}

// toggleFullscreen toggles between fullscreen and windowed mode
func (a *App) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	a.lastFullscreenState = ebiten.IsFullscreen()
	a.config.Window.Fullscreen = a.lastFullscreenState
	a.saveConfig()
}

// initScreens creates all screen instances
func (a *App) initScreens() {
	a.posterScreen = screens.NewPosterScreen(a)
	a.termsScreen = screens.NewTermsScreen(a)
	a.errorScreen = screens.NewErrorScreen(a)
}

// rebuildCurrentScreen rebuilds the UI for the current state
func (a *App) rebuildCurrentScreen() {
	var container *widget.Container

	switch a.state {
	case StatePoster:
		// Save scroll position and focused button before rebuilding
		a.posterScreen.SaveScrollPosition()
		if a.ui != nil {
			a.posterScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		container = a.posterScreen.Build()
	case StateTerms:
		a.termsScreen.SaveScrollPosition()
		if a.ui != nil {
			a.termsScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		container = a.termsScreen.Build()
	case StateError:
		container = a.errorScreen.Build()
	default:
		return
	}

	a.ui = &ebitenui.UI{Container: container}
	a.lastBuildWidth = a.windowWidth // Track width for responsive rebuild detection
}

// navScreen is a screen with keyboard and gamepad focus navigation.
type navScreen interface {
	types.FocusRestorer
	FindFocusInDirection(current widget.Focuser, direction int) *widget.Button
	EnsureFocusedVisible(focused widget.Focuser)
}

// focusScreen returns the screen whose focus and navigation are live.
func (a *App) focusScreen() navScreen {
	switch a.state {
	case StatePoster:
		return a.posterScreen
	case StateTerms:
		return a.termsScreen
	default:
		return a.errorScreen
	}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// Track window position and fullscreen state for save on exit.
	// Layout() handles width/height, but position must be queried here.
	a.windowX, a.windowY = ebiten.WindowPosition()
	a.lastFullscreenState = ebiten.IsFullscreen()

	// Timers first so a tick's scroll lands in this frame's gallery update
	a.scheduler.Update()
	a.applyPickedAssets()
	if a.media != nil && a.media.Update() {
		a.rebuildPending = true
	}

	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	// Poll input manager for global keys
	global := a.inputManager.Update()
	if global.Screenshot {
		a.screenshotPending = true
	}
	if global.Fullscreen {
		a.toggleFullscreen()
	}
	if global.StepGallery && a.state == StatePoster && a.media != nil {
		a.media.StepGallery(global.GalleryDir)
	}

	// Poster and terms wrap text to the window, so rebuild on width changes
	if a.state != StateError && a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
		a.rebuildCurrentScreen()
	}

	nav := a.processUIInput()
	prevState := a.state
	a.ui.Update()
	// Check if state changed during ui.Update (e.g., user followed a link)
	if a.state != prevState {
		return nil
	}
	if !a.rebuildPending {
		a.restorePendingFocus(a.focusScreen())
	}
	if nav.FocusChanged {
		a.ensureFocusedVisible()
	}
	return nil
}

// restorePendingFocus restores focus to a pending button if one exists
func (a *App) restorePendingFocus(screen screens.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

// processUIInput polls gamepad input via InputManager and applies UI actions.
// Returns the navigation result for focus scroll handling.
func (a *App) processUIInput() UINavigation {
	if a.ui == nil {
		return UINavigation{}
	}

	nav := a.inputManager.GetUINavigation()

	if nav.Direction != types.DirNone {
		a.applySpatialNavigation(nav.Direction)
	}

	// A/Cross button activates focused widget
	if nav.Activate {
		if focused := a.ui.GetFocusedWidget(); focused != nil {
			if btn, ok := focused.(*widget.Button); ok {
				btn.Click()
			}
		}
	}

	// ESC or B/Circle button for back navigation
	if nav.Back {
		a.handleBack()
	}

	return nav
}

// applySpatialNavigation uses zone navigation to find the next focus target.
// Falls back to linear navigation when the screen has no answer.
func (a *App) applySpatialNavigation(direction int) {
	focused := a.ui.GetFocusedWidget()
	nextBtn := a.focusScreen().FindFocusInDirection(focused, direction)

	if nextBtn != nil {
		// A gallery step keeps focus where it is.
		if focused != nil && focused.GetWidget() == nextBtn.GetWidget() {
			return
		}
		if focused != nil {
			focused.Focus(false)
		}
		nextBtn.Focus(true)
		return
	}
	if direction == types.DirUp || direction == types.DirLeft {
		a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
	} else {
		a.ui.ChangeFocus(widget.FOCUS_NEXT)
	}
}

// handleBack returns from the terms page; the poster and error screens
// have no back action.
func (a *App) handleBack() {
	if a.state == StateTerms {
		a.SwitchToPoster()
	}
}

// ensureFocusedVisible scrolls the current screen to keep the focused widget visible
func (a *App) ensureFocusedVisible() {
	if focused := a.ui.GetFocusedWidget(); focused != nil {
		a.focusScreen().EnsureFocusedVisible(focused)
	}
}

// applyPickedAssets swaps in an asset pack chosen in the dialog.
func (a *App) applyPickedAssets() {
	r, ok := a.picker.Poll()
	if !ok {
		return
	}
	p := content.NewPrinter(a.lang)
	if r.err != nil {
		log.Warn("failed to open asset pack", "path", r.path, "err", r.err)
		name, _ := style.TruncateStart(r.path, 40)
		a.notification.ShowDefault(p.T("gallery.load.failed", name))
		return
	}

	count := assets.CountIn(r.src, "dots")
	log.Info("asset pack opened", "path", r.path, "dots", count)
	a.setMedia(r.src)
	a.config.Gallery.AssetPath = storage.PortableAssetPath(r.path)
	a.saveConfig()
	a.notification.ShowDefault(p.T("gallery.loaded", count))
	a.rebuildPending = true
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(style.Background)
	a.ui.Draw(screen)
	a.notification.Draw(screen)

	// Take screenshot if pending (after everything is drawn)
	if a.screenshotPending {
		a.screenshotPending = false
		path, err := a.screenshotManager.TakeScreenshot(screen)
		if err != nil {
			log.Error("screenshot failed", "err", err)
		} else {
			log.Debug("screenshot saved", "path", path)
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Query the device scale factor for HiDPI/Retina rendering
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	// Return physical pixel dimensions so the poster renders at full resolution
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	// Track windowed dimensions separately so fullscreen doesn't overwrite them.
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = w
		a.lastWindowedHeight = h
	}
	return w, h
}

// ScreenCallback implementations

// SwitchToPoster transitions to the poster screen
func (a *App) SwitchToPoster() {
	a.state = StatePoster
	a.posterScreen.SetPendingFocus("terms")
	a.rebuildCurrentScreen()
}

// SwitchToTerms transitions to the terms screen
func (a *App) SwitchToTerms() {
	a.state = StateTerms
	a.termsScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// ToggleLanguage switches between English and Spanish and remembers the choice.
func (a *App) ToggleLanguage() {
	a.lang = a.lang.Toggle()
	a.opts.Lang = ""
	a.config.Language = string(a.lang)
	a.saveConfig()

	ebiten.SetWindowTitle(content.NewPoster(a.lang, 0).WindowTitle)
	if a.media != nil {
		a.media.SetLanguage(a.lang)
	}
	a.rebuildPending = true
}

// Language returns the display language.
func (a *App) Language() content.Lang {
	return a.lang
}

// CopyLink copies url to the clipboard and confirms with a notification.
func (a *App) CopyLink(url string) {
	p := content.NewPrinter(a.lang)
	a.clipboardOnce.Do(func() {
		a.clipboardErr = clipboard.Init()
	})
	if a.clipboardErr != nil {
		log.Warn("clipboard unavailable", "err", a.clipboardErr)
		a.notification.ShowDefault(p.T("cta.copy.failed", url))
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(url))
	a.notification.ShowDefault(p.T("cta.copied", url))
}

// ChooseAssets opens a folder picker for a dot image pack.
func (a *App) ChooseAssets() {
	a.picker.ChooseFolder(content.NewPrinter(a.lang).T("gallery.choose.title"))
}

// ChooseArchive opens a file picker for a dot image archive.
func (a *App) ChooseArchive() {
	a.picker.ChooseArchive(content.NewPrinter(a.lang).T("gallery.archive.title"))
}

// Media returns the poster images.
func (a *App) Media() types.PosterMedia {
	return a.media
}

// Exit closes the application
func (a *App) Exit() {
	a.SaveAndClose()
	// Clean exit using os.Exit to avoid log.Fatal's stack trace
	os.Exit(0)
}

// GetWindowWidth returns the current window width for responsive layouts
func (a *App) GetWindowWidth() int {
	return a.windowWidth
}

// RequestRebuild triggers a UI rebuild for the current screen on the next
// frame. Focus restoration is handled in the Update loop after ui.Update()
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// handleDeleteAndContinue deletes the unreadable config and continues with defaults.
func (a *App) handleDeleteAndContinue() {
	if err := storage.DeleteConfig(); err != nil {
		log.Error("failed to delete config", "err", err)
	}
	a.config = storage.DefaultConfig()
	a.configLoadFailed = false
	a.saveConfig()

	a.startPoster()
}

// handleResetAndContinue handles the reset and continue button for validation errors.
// It corrects invalid config fields to defaults, saves, and proceeds to the poster.
func (a *App) handleResetAndContinue() {
	storage.CorrectConfig(a.config, style.ThemeNames())
	a.configLoadFailed = false
	a.saveConfig()

	a.startPoster()
}

// SaveAndClose saves window state and releases the poster images before exit
func (a *App) SaveAndClose() {
	a.saveWindowState()

	if a.media != nil {
		a.media.Close()
		a.media.Wait()
		a.media = nil
	}
	if a.source != nil {
		a.source.Close()
		a.source = nil
	}
	a.notification.Close()
}
