package models

// Maximum number of entries per home content block. The backing cell
// ranges are fixed, so reads and writes clamp to these counts.
const (
	MaxCarouselSlides = 3
	MaxFeatures       = 4
	MaxStats          = 3
)

// CarouselSlide is one image of the storefront carousel.
type CarouselSlide struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Feature is one "why us" card.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat is one statistics counter.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Sections holds the editable section titles of the storefront.
type Sections struct {
	WhyUsTitle      string `json:"whyUsTitle"`
	CatalogTitle    string `json:"catalogTitle"`
	CatalogSubtitle string `json:"catalogSubtitle"`
	NavBrand        string `json:"navBrand"`
}

// Footer holds the editable footer texts and links.
type Footer struct {
	Brand                   string `json:"brand"`
	Tagline                 string `json:"tagline"`
	AvisoLegalLabel         string `json:"avisoLegalLabel"`
	AvisoLegalURL           string `json:"avisoLegalUrl"`
	PoliticaPrivacidadLabel string `json:"politicaPrivacidadLabel"`
	PoliticaPrivacidadURL   string `json:"politicaPrivacidadUrl"`
	TerminosLabel           string `json:"terminosLabel"`
	TerminosURL             string `json:"terminosUrl"`
	Copyright               string `json:"copyright"`
	CopyrightLine           string `json:"copyrightLine"`
}

// HomeContent aggregates everything editable on the storefront home page.
// It is persisted as fixed cell ranges in the "Inicio" sheet; missing or
// malformed blocks fall back to the hardcoded defaults block by block.
type HomeContent struct {
	Carousel []CarouselSlide `json:"carousel"`
	Features []Feature       `json:"features"`
	Stats    []Stat          `json:"stats"`
	Sections Sections        `json:"sections"`
	Footer   Footer          `json:"footer"`
}

// HomeKeyOrder is the fixed order of keys in the flat key/value block of
// the "Inicio" sheet (range A17:B35). Writes always emit every key in this
// order so the block keeps a stable shape.
var HomeKeyOrder = []string{
	"whyUsTitle",
	"catalogTitle",
	"catalogSubtitle",
	"navBrand",
	"footerBrand",
	"footerTagline",
	"avisoLegalLabel",
	"avisoLegalUrl",
	"politicaPrivacidadLabel",
	"politicaPrivacidadUrl",
	"terminosLabel",
	"terminosUrl",
	"copyright",
	"copyrightLine",
}

// DefaultHomeContent returns the hardcoded fallback content. The UI never
// sees empty blocks: any range that is unset or malformed is replaced with
// its default independently of the others.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		Carousel: []CarouselSlide{
			{Src: "/static/Banner1_Azura.png", Alt: "Banner promocional de Azura Beauty & Nails"},
			{Src: "/static/Banner2_Azura.png", Alt: "Banner promocional: Cuidado de Profesionales"},
			{Src: "/static/Banner3_Azura.png", Alt: "Banner promocional: Cuidado de Manos"},
		},
		Features: []Feature{
			{
				Icon:        "RiShieldCheckLine",
				Title:       "Seguridad",
				Description: "Nuestro compromiso por ser una empresa responsable y confiable nos respalda",
			},
			{
				Icon:        "RiTimeLine",
				Title:       "Tiempo de Entrega",
				Description: "Comprometidos con cumplir en tiempo y forma con tu pedido",
			},
			{
				Icon:        "RiCustomerService2Line",
				Title:       "Servicio",
				Description: "Comprueba por ti mismo nuestro monitoreo y servicio durante y post venta",
			},
			{
				Icon:        "RiLightbulbFlashLine",
				Title:       "Propuesta",
				Description: "Contamos con propuesta e innovación difícil de superar",
			},
		},
		Stats: []Stat{
			{Value: "+2,500", Label: "Pedidos Completados"},
			{Value: "98%", Label: "Satisfacción del Cliente"},
			{Value: "+3", Label: "Años de Experiencia"},
		},
		Sections: Sections{
			WhyUsTitle:      "¿POR QUÉ ELEGIRNOS?",
			CatalogTitle:    "Explora nuestro Catálogo",
			CatalogSubtitle: "Descubre nuestra amplia variedad de productos de calidad",
			NavBrand:        "Catálogo Pro",
		},
		Footer: Footer{
			Brand:                   "Catálogo Pro",
			Tagline:                 "Tu socio de confianza para productos de calidad y servicio excepcional",
			AvisoLegalLabel:         "Aviso Legal",
			AvisoLegalURL:           "#",
			PoliticaPrivacidadLabel: "Política de Privacidad",
			PoliticaPrivacidadURL:   "#",
			TerminosLabel:           "Términos y Condiciones",
			TerminosURL:             "#",
			Copyright:               "© 2026 Catálogo Pro",
			CopyrightLine:           "Copyright © 2026 Catálogo Pro. Todos los derechos reservados.",
		},
	}
}
