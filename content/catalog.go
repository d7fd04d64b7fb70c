package content

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// entry is one message in both languages. Text is a printf format, so a
// literal percent sign is written as %%.
type entry struct {
	key, en, es string
}

var entries = []entry{
	{"window.title", "DOTS — The largest PFP collection in history", "DOTS — La colección de PFPs más grande de la historia"},
	{"brand", "DOTS", "DOTS"},

	{"header.mint", "Mint soon", "Mint pronto"},
	{"header.toggle", "Toggle language", "Cambiar idioma"},

	{"hero.title", "Every dot is a star.", "Every dot is a star."},
	{"hero.accent", "On Bitcoin.", "On Bitcoin."},
	{"hero.text",
		"1,100,000 creatures. The biggest PFP collection ever. Born on Bitcoin. Moving endlessly across its node network.",
		"1,100,000 criaturas. La colección de PFPs más grande de la historia. Nacidos en Bitcoin. Viajando eternamente por su red de nodos."},
	{"hero.mint", "Mint (soon)", "Mint (pronto)"},

	{"facts.supply", "Supply", "Supply"},
	{"facts.types", "Types", "Seres"},
	{"facts.traits", "Traits", "Rasgos"},
	{"facts.traits.value", "A lot", "Muchos"},
	{"facts.network", "Network", "Red"},
	{"facts.wen", "Wen", "Wen"},
	{"facts.wen.value", "Soon", "Soon"},

	{"gallery.heading", "Some dots", "Algunos dots"},
	{"gallery.subheading", "Auto-carousel • random order", "Auto-carrusel • orden aleatorio"},
	{"gallery.prev", "Previous", "Anterior"},
	{"gallery.next", "Next", "Siguiente"},
	{"gallery.missing", "Image not found", "Imagen no encontrada"},
	{"gallery.choose", "Choose images", "Elegir imágenes"},
	{"gallery.choose.title", "Choose a DOTS image folder", "Elige una carpeta de imágenes DOTS"},
	{"gallery.archive", "Open archive", "Abrir archivo"},
	{"gallery.archive.title", "Choose a DOTS image archive", "Elige un archivo de imágenes DOTS"},
	{"gallery.loaded", "Loaded %d images", "%d imágenes cargadas"},
	{"gallery.load.failed", "Could not open %s", "No se pudo abrir %s"},

	{"sweep.title",
		"Mint DOTS & Enter Our BIG RAFFLE — Over 3 BTC in prizes! More than 300k USD!!",
		"Mintea DOTS y participa en nuestro GRAN SORTEO — ¡Más de 3 BTC en premios! ¡¡¡300mil dólares!!!"},
	{"sweep.body",
		"With DOTS you won’t just mint the largest NFT collection in history (~1,100,000 unique PFPs); you’ll also be automatically entered into multiple raffles with incredible prizes — BTCs, high-value Ordinals and surprises.",
		"Con DOTS no solo mintearás la colección NFT más grande de la historia (≈ 1.100.000 PFPs únicos); también entrarás automáticamente en varios sorteos con premios increíbles: BTCs, Ordinals destacados y más."},
	{"sweep.m20.label", "20%% of the mint:", "Al 20%% del mint:"},
	{"sweep.m20.text", "we’ll raffle 100 prizes of 0.005 BTC each.", "rifaremos 100 premios de 0.005 BTC cada uno."},
	{"sweep.m50.label", "50%% of the mint:", "Al 50%% del mint:"},
	{"sweep.m50.text", "we’ll raffle 5 prizes of 0.1 BTC each, plus several top-tier Ordinals.", "rifaremos 5 premios de 0.1 BTC cada uno, además de Ordinals de colecciones top."},
	{"sweep.m100.label", "100%% completion:", "Al 100%%:"},
	{"sweep.m100.text", "the final raffle for 1 BTC, plus additional 0.1 BTC prizes and major Ordinals.", "rifa final por 1 BTC, más premios adicionales de 0.1 BTC y Ordinals importantes."},
	{"sweep.closing",
		"OVER $300,000 IN PRIZES! Don’t miss your DOT — join the largest NFT collection in history.",
		"¡MÁS DE $300,000 EN PREMIOS! No te quedes sin tu DOT — sé parte de la colección NFT más grande de la historia."},
	{"sweep.terms.prefix", "See", "Consulta"},
	{"sweep.terms.link", "Raffles Terms", "Términos del Sorteo"},
	{"sweep.terms.suffix", "for full details.", "para detalles y requisitos."},

	{"cta.heading", "Join the DOTS orbit", "Únete a la órbita DOTS"},
	{"cta.text", "We’ll keep sharing progress. Public mint date announced soon.", "Seguiremos publicando avances. Anunciaremos la fecha de mint público pronto."},
	{"cta.button", "Twitter / X", "Twitter / X"},
	{"cta.copied", "Link copied: %s", "Enlace copiado: %s"},
	{"cta.copy.failed", "Clipboard unavailable: %s", "Portapapeles no disponible: %s"},

	{"footer", "© %s DOTS — Built on Bitcoin. All rights reserved.", "© %s DOTS — Built on Bitcoin. All rights reserved."},

	{"terms.title", "Raffles Terms — DOTS", "Términos del Sorteo (Rifas) — DOTS"},
	{"terms.updated", "Last updated: Sep 2025 — Please read carefully before participating.", "Última actualización: Sep 2025 — Lee con atención antes de participar."},
	{"terms.back", "Back", "Volver"},
	{"terms.summary.heading", "Quick summary", "Resumen rápido"},
	{"terms.summary.text",
		"Each raffle will be executed only after the corresponding mint milestone is reached (e.g. 20%%, 50%% or 100%% of the total mint). Every DOT minted during the public mint acts as an entry for the raffles linked to the milestones that are achieved.",
		"Para que cada rifa se lleve a cabo debe alcanzarse la meta de mint correspondiente (p. ej. 20%%, 50%% o 100%% del total). Cada DOT minteado durante el proceso de mint actúa como entrada para las rifas asociadas a las metas alcanzadas."},
	{"terms.eligibility.heading", "1. Eligibility", "1. Elegibilidad"},
	{"terms.eligibility.age", "Participants must be of legal age in their local jurisdiction.", "Pueden participar personas mayores de edad según su jurisdicción local."},
	{"terms.eligibility.fraud", "No fraudulent accounts or behavior are allowed; the organizer reserves the right to disqualify.", "No se permiten cuentas o prácticas fraudulentas; la organización se reserva el derecho de descalificar."},
	{"terms.enter.heading", "2. How to enter", "2. Cómo participar"},
	{"terms.enter.text",
		"The primary way to enter is by publicly minting DOTS. Each DOT minted during the mint window counts as one valid entry into the raffles tied to the milestone reached.",
		"La forma principal de entrada es a través del mint público de DOTS. Cada DOT mintado durante el periodo de mint se considera una entrada válida para las rifas correspondientes a la meta alcanzada."},
	{"terms.enter.box", "Milestones & prizes", "Hitos y premios"},
	{"terms.enter.m20", "At 20%%: we’ll raffle 100 prizes of 0.005 BTC each.", "Al 20%% del mint: rifaremos 100 premios de 0.005 BTC cada uno."},
	{"terms.enter.m50", "At 50%%: we’ll raffle 5 prizes of 0.1 BTC each + selected high-value Ordinals.", "Al 50%%: rifaremos 5 premios de 0.1 BTC cada uno + Ordinals seleccionados."},
	{"terms.enter.m100", "At 100%% completion: the final raffle for 1 BTC + additional 0.1 BTC prizes and major Ordinals.", "Al 100%%: rifa final por 1 BTC + premios adicionales de 0.1 BTC y Ordinals de alto valor."},
	{"terms.trigger.heading", "3. Raffle trigger", "3. Activación de la rifa"},
	{"terms.trigger.text",
		"A raffle will only be executed once the corresponding mint percentage has been reached and confirmed by our backend and on-chain data. If a milestone is not reached, that raffle remains pending until it is.",
		"Una rifa solo se realizará cuando el porcentaje de mint correspondiente sea alcanzado y confirmemos la métrica con nuestro backend y los datos on-chain. Si la meta no se alcanza, la rifa queda pendiente hasta que se cumpla."},
	{"terms.winners.heading", "4. Winner selection & notification", "4. Selección y notificación de ganadores"},
	{"terms.winners.random", "Winners will be selected at random via a documented and verifiable procedure.", "Los ganadores se seleccionarán al azar mediante un proceso verificable y documentado."},
	{"terms.winners.notify",
		"We will notify winners via the wallet address associated with their DOT, or via contact details they provide when claiming the prize.",
		"Notificaremos a los ganadores vía la dirección de wallet asociada a su DOT, o mediante el canal de contacto que proporcionen cuando reclamen el premio."},
	{"terms.winners.deadline",
		"Winners will have a limited time to claim their prize; unclaimed prizes may be reassigned.",
		"Los ganadores dispondrán de un plazo para reclamar; si no reclaman dentro del plazo, el premio podrá ser reasignado."},
	{"terms.claim.heading", "5. Claiming & delivery", "5. Reclamo y entrega"},
	{"terms.claim.text", "To receive a prize, the winner must:", "Para recibir el premio, el ganador deberá:"},
	{"terms.claim.wallet",
		"Provide the Bitcoin wallet address where they want to receive the prize (or an agreed alternative).",
		"Proporcionar la dirección de wallet Bitcoin donde desea recibir el premio (u otro método acordado)."},
	{"terms.claim.verify",
		"Accept any additional verification requirements (e.g. proof of DOT ownership, limited KYC for high-value prizes).",
		"Aceptar los términos adicionales de verificación (p. ej. pruebas de propiedad del DOT, KYC limitado si aplica por montos altos)."},
	{"terms.claim.address",
		"DOTS / the team are not responsible for incorrectly provided addresses by the winner.",
		"DOTS / el equipo no se hace responsable de direcciones erróneas proporcionadas por el ganador."},
	{"terms.taxes.heading", "6. Taxes & fees", "6. Impuestos y costes"},
	{"terms.taxes.text",
		"Prizes may be subject to taxes or withholdings according to the winner’s jurisdiction. The winner is responsible for any tax liabilities. DOTS may request tax information for high-value awards.",
		"Los premios pueden estar sujetos a impuestos o retenciones según la jurisdicción del ganador. El ganador es responsable de cualquier obligación fiscal asociada. DOTS podrá requerir información fiscal para entregar premios de alto valor."},
	{"terms.fraud.heading", "7. Disqualification & fraud", "7. Descalificación y fraude"},
	{"terms.fraud.text",
		"We reserve the right to disqualify entries that are fraudulent or manipulated, and to take legal action if necessary.",
		"Nos reservamos el derecho de descalificar entradas que resulten fraudulentas o manipuladas, así como de tomar medidas legales si fuese necesario."},
	{"terms.changes.heading", "8. Changes & cancellation", "8. Cambios y cancelación"},
	{"terms.changes.text",
		"DOTS reserves the right to modify raffle rules, adjust prizes, or cancel raffles due to technical, legal or force-majeure reasons. Any change will be announced via official channels.",
		"DOTS se reserva el derecho de modificar las reglas del sorteo, ajustar premios o cancelar las rifas por causas técnicas, legales o de fuerza mayor. Cualquier cambio será comunicado por los canales oficiales."},
	{"terms.liability.heading", "9. Liability", "9. Responsabilidad"},
	{"terms.liability.text",
		"To the fullest extent permitted by law, DOTS shall not be liable for indirect damages, data loss, lost profits, or any damages arising from participation in the raffles.",
		"En la máxima medida permitida por la ley, DOTS no será responsable por daños indirectos, pérdida de datos, lucro cesante, o cualquier daño derivado de la participación en las rifas."},
	{"terms.contact.heading", "Contact", "Contacto"},
	{"terms.contact.text", "If you have questions about the terms, email %s", "Si tienes dudas sobre los términos, escribe a %s"},
	{"terms.disclaimer",
		"These terms are a general summary. The official DOTS published terms prevail in case of discrepancy.",
		"Estos términos son un resumen general. En caso de divergencia, prevalecerá la versión oficial publicada por DOTS."},
}

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(language.English, e.key, e.en); err != nil {
			panic(fmt.Sprintf("content: %s: %v", e.key, err))
		}
		if err := b.SetString(language.Spanish, e.key, e.es); err != nil {
			panic(fmt.Sprintf("content: %s: %v", e.key, err))
		}
	}
	return b
}

// Printer formats catalog messages for one language.
type Printer struct {
	lang Lang
	p    *message.Printer
}

// NewPrinter returns a Printer for l.
func NewPrinter(l Lang) *Printer {
	if !l.Valid() {
		l = DefaultLang
	}
	return &Printer{lang: l, p: message.NewPrinter(l.Tag(), message.Catalog(messages))}
}

// Lang returns the printer's language.
func (p *Printer) Lang() Lang { return p.lang }

// T returns the message for key formatted with args.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
