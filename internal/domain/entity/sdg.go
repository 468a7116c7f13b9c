package entity

// SDGCode identifica un Objetivo de Desarrollo Sostenible de la ONU
// ("sdg1".."sdg17") o "other" para actividades no clasificadas.
type SDGCode string

// Códigos SDG válidos.
const (
	SDG1     SDGCode = "sdg1"
	SDG2     SDGCode = "sdg2"
	SDG3     SDGCode = "sdg3"
	SDG4     SDGCode = "sdg4"
	SDG5     SDGCode = "sdg5"
	SDG6     SDGCode = "sdg6"
	SDG7     SDGCode = "sdg7"
	SDG8     SDGCode = "sdg8"
	SDG9     SDGCode = "sdg9"
	SDG10    SDGCode = "sdg10"
	SDG11    SDGCode = "sdg11"
	SDG12    SDGCode = "sdg12"
	SDG13    SDGCode = "sdg13"
	SDG14    SDGCode = "sdg14"
	SDG15    SDGCode = "sdg15"
	SDG16    SDGCode = "sdg16"
	SDG17    SDGCode = "sdg17"
	SDGOther SDGCode = "other"
)

// SDGCatalogue lista los 18 códigos en orden canónico (sdg1..sdg17, other).
// Este orden es el desempate estable en toda ordenación de métricas SDG.
var SDGCatalogue = []SDGCode{
	SDG1, SDG2, SDG3, SDG4, SDG5, SDG6, SDG7, SDG8, SDG9,
	SDG10, SDG11, SDG12, SDG13, SDG14, SDG15, SDG16, SDG17,
	SDGOther,
}

// sdgLabels etiquetas de presentación por código.
var sdgLabels = map[SDGCode]string{
	SDG1:     "SDG 1: No Poverty",
	SDG2:     "SDG 2: Zero Hunger",
	SDG3:     "SDG 3: Good Health and Well-being",
	SDG4:     "SDG 4: Quality Education",
	SDG5:     "SDG 5: Gender Equality",
	SDG6:     "SDG 6: Clean Water and Sanitation",
	SDG7:     "SDG 7: Affordable and Clean Energy",
	SDG8:     "SDG 8: Decent Work and Economic Growth",
	SDG9:     "SDG 9: Industry, Innovation, and Infrastructure",
	SDG10:    "SDG 10: Reduced Inequality",
	SDG11:    "SDG 11: Sustainable Cities and Communities",
	SDG12:    "SDG 12: Responsible Consumption and Production",
	SDG13:    "SDG 13: Climate Action",
	SDG14:    "SDG 14: Life Below Water",
	SDG15:    "SDG 15: Life on Land",
	SDG16:    "SDG 16: Peace and Justice Strong Institutions",
	SDG17:    "SDG 17: Partnerships to achieve the Goal",
	SDGOther: "Other/Not Classified",
}

// Label devuelve la etiqueta de presentación del código, o el código crudo si no está catalogado.
func (c SDGCode) Label() string {
	if l, ok := sdgLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid indica si el código pertenece al catálogo.
func (c SDGCode) Valid() bool {
	_, ok := sdgLabels[c]
	return ok
}
