package content

import "strconv"

// External links.
const (
	XURL         = "https://x.com/justdots_art"
	ContactEmail = "hello@justdots.art"
)

// Fact is one cell of the facts grid.
type Fact struct {
	Label string
	Value string
}

// Milestone is one sweepstakes prize tier.
type Milestone struct {
	Label string
	Text  string
}

// Poster is the copy of the main screen in one language.
type Poster struct {
	Lang        Lang
	WindowTitle string
	Brand       string
	MintSoon    string
	ToggleLabel string
	ToggleHint  string

	HeroTitle  string
	HeroAccent string
	HeroText   string
	HeroMint   string

	Facts []Fact

	GalleryHeading    string
	GallerySubheading string
	GalleryPrev       string
	GalleryNext       string
	ImageNotFound     string
	ChooseImages      string
	ChooseArchive     string

	SweepTitle   string
	SweepBody    string
	Milestones   []Milestone
	SweepClosing string
	TermsPrefix  string
	TermsLink    string
	TermsSuffix  string
	CTAHeading   string
	CTAText      string
	CTAButton    string
	CTAURL       string
	Footer       string
}

// NewPoster builds the poster copy for l. year is shown in the footer.
func NewPoster(l Lang, year int) Poster {
	p := NewPrinter(l)
	return Poster{
		Lang:        p.Lang(),
		WindowTitle: p.T("window.title"),
		Brand:       p.T("brand"),
		MintSoon:    p.T("header.mint"),
		ToggleLabel: p.Lang().Label(),
		ToggleHint:  p.T("header.toggle"),

		HeroTitle:  p.T("hero.title"),
		HeroAccent: p.T("hero.accent"),
		HeroText:   p.T("hero.text"),
		HeroMint:   p.T("hero.mint"),

		Facts: []Fact{
			{p.T("facts.supply"), "1,100,000"},
			{p.T("facts.types"), "10"},
			{p.T("facts.traits"), p.T("facts.traits.value")},
			{p.T("facts.network"), "Bitcoin"},
			{p.T("facts.wen"), p.T("facts.wen.value")},
		},

		GalleryHeading:    p.T("gallery.heading"),
		GallerySubheading: p.T("gallery.subheading"),
		GalleryPrev:       p.T("gallery.prev"),
		GalleryNext:       p.T("gallery.next"),
		ImageNotFound:     p.T("gallery.missing"),
		ChooseImages:      p.T("gallery.choose"),
		ChooseArchive:     p.T("gallery.archive"),

		SweepTitle: p.T("sweep.title"),
		SweepBody:  p.T("sweep.body"),
		Milestones: []Milestone{
			{p.T("sweep.m20.label"), p.T("sweep.m20.text")},
			{p.T("sweep.m50.label"), p.T("sweep.m50.text")},
			{p.T("sweep.m100.label"), p.T("sweep.m100.text")},
		},
		SweepClosing: p.T("sweep.closing"),
		TermsPrefix:  p.T("sweep.terms.prefix"),
		TermsLink:    p.T("sweep.terms.link"),
		TermsSuffix:  p.T("sweep.terms.suffix"),

		CTAHeading: p.T("cta.heading"),
		CTAText:    p.T("cta.text"),
		CTAButton:  p.T("cta.button"),
		CTAURL:     XURL,
		Footer:     p.T("footer", strconv.Itoa(year)),
	}
}

// Section is one block of the terms page. Any of its parts may be empty.
type Section struct {
	Heading    string
	Text       string
	Bullets    []string
	BoxTitle   string
	BoxBullets []string
}

// Terms is the raffle terms page in one language.
type Terms struct {
	Lang       Lang
	Title      string
	Updated    string
	Back       string
	Sections   []Section
	Disclaimer string
}

// NewTerms builds the terms page for l.
func NewTerms(l Lang) Terms {
	p := NewPrinter(l)
	return Terms{
		Lang:    p.Lang(),
		Title:   p.T("terms.title"),
		Updated: p.T("terms.updated"),
		Back:    p.T("terms.back"),
		Sections: []Section{
			{Heading: p.T("terms.summary.heading"), Text: p.T("terms.summary.text")},
			{Heading: p.T("terms.eligibility.heading"), Bullets: []string{
				p.T("terms.eligibility.age"),
				p.T("terms.eligibility.fraud"),
			}},
			{
				Heading:  p.T("terms.enter.heading"),
				Text:     p.T("terms.enter.text"),
				BoxTitle: p.T("terms.enter.box"),
				BoxBullets: []string{
					p.T("terms.enter.m20"),
					p.T("terms.enter.m50"),
					p.T("terms.enter.m100"),
				},
			},
			{Heading: p.T("terms.trigger.heading"), Text: p.T("terms.trigger.text")},
			{Heading: p.T("terms.winners.heading"), Bullets: []string{
				p.T("terms.winners.random"),
				p.T("terms.winners.notify"),
				p.T("terms.winners.deadline"),
			}},
			{Heading: p.T("terms.claim.heading"), Text: p.T("terms.claim.text"), Bullets: []string{
				p.T("terms.claim.wallet"),
				p.T("terms.claim.verify"),
				p.T("terms.claim.address"),
			}},
			{Heading: p.T("terms.taxes.heading"), Text: p.T("terms.taxes.text")},
			{Heading: p.T("terms.fraud.heading"), Text: p.T("terms.fraud.text")},
			{Heading: p.T("terms.changes.heading"), Text: p.T("terms.changes.text")},
			{Heading: p.T("terms.liability.heading"), Text: p.T("terms.liability.text")},
			{Heading: p.T("terms.contact.heading"), Text: p.T("terms.contact.text", ContactEmail)},
		},
		Disclaimer: p.T("terms.disclaimer"),
	}
}
