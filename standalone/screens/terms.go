package screens

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/content"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

// TermsScreen shows the raffle terms and conditions.
type TermsScreen struct {
	BaseScreen

	callback ScreenCallback
}

// NewTermsScreen creates the terms screen
func NewTermsScreen(callback ScreenCallback) *TermsScreen {
	s := &TermsScreen{callback: callback}
	s.InitBase()
	return s
}

func (s *TermsScreen) textWidth() int {
	w := s.callback.GetWindowWidth() - 2*style.DefaultPadding - style.ScrollbarWidth - style.SmallSpacing
	return max(style.Px(200), min(style.ContentMaxWidth, w))
}

// Build creates the terms UI
func (s *TermsScreen) Build() *widget.Container {
	s.ClearFocusButtons()

	terms := content.NewTerms(s.callback.Language())
	width := s.textWidth()

	root := style.ScreenContainer()
	page := style.ScreenContentContainer([]bool{false, true})

	header := style.ButtonRow()
	backBtn := style.TextButton("‹ "+terms.Back, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.callback.SwitchToPoster()
	})
	langBtn := style.TextButton(terms.Lang.Label(), style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("lang")
		s.callback.ToggleLanguage()
	})
	header.AddChild(backBtn)
	header.AddChild(langBtn)
	page.AddChild(header)

	body := style.VStack(style.LargeSpacing)
	intro := style.VStack(style.TinySpacing)
	intro.AddChild(style.Heading(terms.Title, style.Text))
	intro.AddChild(widget.NewText(
		widget.TextOpts.Text(terms.Updated, style.FontFace(), style.TextSecondary),
	))
	body.AddChild(intro)

	for _, sec := range terms.Sections {
		body.AddChild(section(sec, width))
	}
	body.AddChild(style.Paragraph(terms.Disclaimer, style.TextSecondary, width))

	scroll, slider, wrapper := style.ScrollableContainer(style.ScrollableOpts{Content: body})
	s.SetScrollWidgets(scroll, slider)
	s.RestoreScrollPosition()
	page.AddChild(wrapper)

	s.RegisterFocusButton("back", backBtn)
	s.RegisterFocusButton("lang", langBtn)
	s.RegisterNavZone("header", types.NavZoneHorizontal, []string{"back", "lang"})

	root.AddChild(page)
	return root
}

// section renders one terms block. Empty parts are skipped.
func section(sec content.Section, width int) *widget.Container {
	c := style.VStack(style.SmallSpacing)
	c.AddChild(style.Heading(sec.Heading, style.Text))
	if sec.Text != "" {
		c.AddChild(style.Paragraph(sec.Text, style.Text, width))
	}
	if len(sec.Bullets) > 0 {
		c.AddChild(style.BulletList(sec.Bullets, style.Text, width))
	}
	if sec.BoxTitle != "" || len(sec.BoxBullets) > 0 {
		outer, inner := style.Panel(style.DefaultPadding)
		inner.AddChild(widget.NewText(
			widget.TextOpts.Text(sec.BoxTitle, style.HeadingFace(), style.Accent),
		))
		inner.AddChild(style.BulletList(sec.BoxBullets, style.Text, width-2*style.DefaultPadding))
		c.AddChild(outer)
	}
	return c
}

// EnsureFocusedVisible is a no-op; the terms buttons sit above the scroll area.
func (s *TermsScreen) EnsureFocusedVisible(widget.Focuser) {}

// OnEnter is called when entering the terms screen
func (s *TermsScreen) OnEnter() {
	s.ResetScroll()
	s.SetDefaultFocus("back")
}
