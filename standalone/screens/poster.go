package screens

import (
	"time"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/content"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

// PosterScreen is the main promo page: header, hero, facts, gallery,
// sweepstakes and call to action.
type PosterScreen struct {
	BaseScreen

	callback ScreenCallback
	now      func() time.Time
}

// NewPosterScreen creates the poster screen
func NewPosterScreen(callback ScreenCallback) *PosterScreen {
	s := &PosterScreen{
		callback: callback,
		now:      time.Now,
	}
	s.InitBase()
	return s
}

// contentWidth is the usable width inside the page padding and scrollbar.
func (s *PosterScreen) contentWidth() int {
	w := s.callback.GetWindowWidth() - 2*style.DefaultPadding - style.ScrollbarWidth - style.SmallSpacing
	return max(w, style.Px(200))
}

func (s *PosterScreen) textWidth() int {
	return min(style.ContentMaxWidth, s.contentWidth())
}

// FactColumns returns how many fact cells fit in width, between 1 and n.
func FactColumns(width, n int) int {
	cols := width / (style.FactMinWidth + style.SmallSpacing)
	return max(1, min(cols, n))
}

// Build creates the poster UI
func (s *PosterScreen) Build() *widget.Container {
	s.ClearFocusButtons()

	c := content.NewPoster(s.callback.Language(), s.now().Year())
	media := s.callback.Media()

	root := style.ScreenContainer()
	page := style.ScreenContentContainer([]bool{false, true})

	page.AddChild(s.buildHeader(c, media))

	body := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.SectionSpacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: style.DefaultPadding}),
		)),
	)
	body.AddChild(s.buildHero(c, media))
	body.AddChild(s.buildFacts(c))
	body.AddChild(s.buildGallery(c, media))
	body.AddChild(s.buildSweepstakes(c, media))
	body.AddChild(s.buildCTA(c))
	body.AddChild(widget.NewText(
		widget.TextOpts.Text(c.Footer, style.FontFace(), style.TextSecondary),
		widget.TextOpts.MaxWidth(float64(s.textWidth())),
	))

	scroll, slider, wrapper := style.ScrollableContainer(style.ScrollableOpts{Content: body})
	s.SetScrollWidgets(scroll, slider)
	s.RestoreScrollPosition()
	page.AddChild(wrapper)

	s.setupNavigation(media)

	root.AddChild(page)
	return root
}

func (s *PosterScreen) buildHeader(c content.Poster, media PosterMedia) *widget.Container {
	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{false, true, false}, []bool{false}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
	)
	header.AddChild(media.Logo())
	header.AddChild(widget.NewContainer())

	actions := style.ButtonRow()
	langBtn := style.TextButton(c.ToggleLabel, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("lang")
		s.callback.ToggleLanguage()
	})
	actions.AddChild(langBtn)
	actions.AddChild(pill(c.MintSoon))
	header.AddChild(actions)

	s.RegisterFocusButton("lang", langBtn)
	return header
}

// pill is a non-interactive label on a Primary background.
func pill(label string) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Primary)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		)),
	)
	c.AddChild(widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), style.TextOnPrimary),
	))
	return c
}

func (s *PosterScreen) buildHero(c content.Poster, media PosterMedia) *widget.Container {
	hero := style.VStack(style.DefaultSpacing)
	hero.AddChild(style.Heading(c.HeroTitle, style.Text))
	hero.AddChild(style.Heading(c.HeroAccent, style.Accent))
	hero.AddChild(style.Paragraph(c.HeroText, style.TextSecondary, s.textWidth()))
	hero.AddChild(s.dotRow(media, content.TopDotIDs, content.HeroDotWidth))
	hero.AddChild(widget.NewText(
		widget.TextOpts.Text(c.HeroMint, style.FontFace(), style.Accent),
	))
	return hero
}

// dotRow lays out dots in as many columns as fit the content width.
func (s *PosterScreen) dotRow(media PosterMedia, ids []int, width int) *widget.Container {
	cell := style.Px(width) + style.SmallSpacing
	cols := max(1, min(len(ids), s.contentWidth()/cell))
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(cols),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, style.SmallSpacing),
		)),
	)
	for _, id := range ids {
		row.AddChild(media.Dot(id, width))
	}
	return row
}

func (s *PosterScreen) buildFacts(c content.Poster) *widget.Container {
	cols := FactColumns(s.contentWidth(), len(c.Facts))
	stretch := make([]bool, cols)
	for i := range stretch {
		stretch[i] = true
	}
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(cols),
			widget.GridLayoutOpts.Stretch(stretch, nil),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, style.SmallSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	for _, f := range c.Facts {
		outer, inner := style.Panel(style.SmallSpacing)
		outer.GetWidget().MinHeight = style.FactHeight
		inner.AddChild(widget.NewText(
			widget.TextOpts.Text(f.Label, style.FontFace(), style.TextSecondary),
		))
		inner.AddChild(widget.NewText(
			widget.TextOpts.Text(f.Value, style.HeadingFace(), style.Text),
		))
		grid.AddChild(outer)
	}
	return grid
}

func (s *PosterScreen) buildGallery(c content.Poster, media PosterMedia) *widget.Container {
	section := style.VStack(style.SmallSpacing)
	section.AddChild(style.Heading(c.GalleryHeading, style.Text))
	section.AddChild(widget.NewText(
		widget.TextOpts.Text(c.GallerySubheading, style.FontFace(), style.TextSecondary),
	))
	section.AddChild(media.Gallery())

	controls := style.ButtonRow()
	prevBtn := style.TextButton("‹ "+c.GalleryPrev, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		media.StepGallery(carousel.Backward)
	})
	nextBtn := style.TextButton(c.GalleryNext+" ›", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		media.StepGallery(carousel.Forward)
	})
	chooseBtn := style.TextButton(c.ChooseImages, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("choose")
		s.callback.ChooseAssets()
	})
	archiveBtn := style.TextButton(c.ChooseArchive, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("archive")
		s.callback.ChooseArchive()
	})
	controls.AddChild(prevBtn)
	controls.AddChild(nextBtn)
	section.AddChild(controls)

	pick := style.ButtonRow()
	pick.AddChild(chooseBtn)
	pick.AddChild(archiveBtn)
	section.AddChild(pick)

	s.RegisterFocusButton("prev", prevBtn)
	s.RegisterFocusButton("next", nextBtn)
	s.RegisterFocusButton("choose", chooseBtn)
	s.RegisterFocusButton("archive", archiveBtn)
	return section
}

func (s *PosterScreen) buildSweepstakes(c content.Poster, media PosterMedia) *widget.Container {
	outer, inner := style.Panel(style.DefaultPadding)
	width := s.textWidth() - 2*style.DefaultPadding

	inner.AddChild(style.Heading(c.SweepTitle, style.Text))
	inner.AddChild(style.Paragraph(c.SweepBody, style.Text, width))
	for _, m := range c.Milestones {
		row := style.VStack(0)
		row.AddChild(widget.NewText(
			widget.TextOpts.Text(m.Label, style.FontFace(), style.Accent),
		))
		row.AddChild(style.Paragraph(m.Text, style.Text, width))
		inner.AddChild(row)
	}
	inner.AddChild(style.Paragraph(c.SweepClosing, style.TextSecondary, width))

	bottom := content.BottomIDs(content.TopDotIDs, content.DesiredBottomIDs, content.NumThumbs)
	inner.AddChild(s.dotRow(media, bottom, content.BottomDotWidth))

	terms := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
	)
	center := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
	terms.AddChild(widget.NewText(
		widget.TextOpts.Text(c.TermsPrefix, style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	))
	termsBtn := style.LinkButton(c.TermsLink, func(args *widget.ButtonClickedEventArgs) {
		s.SaveScrollPosition()
		s.SetPendingFocus("terms")
		s.callback.SwitchToTerms()
	})
	termsBtn.GetWidget().LayoutData = center
	terms.AddChild(termsBtn)
	terms.AddChild(widget.NewText(
		widget.TextOpts.Text(c.TermsSuffix, style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	))
	inner.AddChild(terms)

	s.RegisterFocusButton("terms", termsBtn)
	return outer
}

func (s *PosterScreen) buildCTA(c content.Poster) *widget.Container {
	cta := style.VStack(style.SmallSpacing)
	cta.AddChild(style.Heading(c.CTAHeading, style.Text))
	cta.AddChild(style.Paragraph(c.CTAText, style.TextSecondary, s.textWidth()))

	btn := style.PrimaryTextButton(c.CTAButton, style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.CopyLink(c.CTAURL)
	})
	row := style.ButtonRow()
	row.AddChild(btn)
	cta.AddChild(row)

	s.RegisterFocusButton("cta", btn)
	return cta
}

func (s *PosterScreen) setupNavigation(media PosterMedia) {
	s.RegisterNavZone("header", types.NavZoneHorizontal, []string{"lang"})
	s.RegisterStepperZone("gallery", "prev", "next", media.StepGallery)
	s.RegisterNavZone("assets", types.NavZoneHorizontal, []string{"choose", "archive"})
	s.RegisterNavZone("terms", types.NavZoneHorizontal, []string{"terms"})
	s.RegisterNavZone("cta", types.NavZoneHorizontal, []string{"cta"})

	order := []string{"header", "gallery", "assets", "terms", "cta"}
	for i := 1; i < len(order); i++ {
		s.SetNavTransition(order[i-1], types.DirDown, order[i], types.NavIndexFirst)
		s.SetNavTransition(order[i], types.DirUp, order[i-1], types.NavIndexFirst)
	}
}

// EnsureFocusedVisible scrolls the page to the focused button.
func (s *PosterScreen) EnsureFocusedVisible(focused widget.Focuser) {
	s.BaseScreen.EnsureFocusedVisible(focused, nil)
}

// OnEnter is called when entering the poster screen
func (s *PosterScreen) OnEnter() {
	s.SetDefaultFocus("next")
}
