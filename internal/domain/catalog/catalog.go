// Package catalog holds the fixed house and indicator tables the dashboard
// is built around. Tables are package-level and must be treated as read-only.
package catalog

// HouseKey identifies one of the competing houses.
type HouseKey string

// House keys.
const (
	Prisma   HouseKey = "prisma"
	Macondo  HouseKey = "macondo"
	Marmoris HouseKey = "marmoris"
)

// HouseOrder is the canonical display and tie-break order.
var HouseOrder = []HouseKey{Prisma, Macondo, Marmoris} //nolint:gochecknoglobals // constant table

// IndicatorKey identifies a performance indicator.
type IndicatorKey string

// Indicator keys.
const (
	Adimplencia     IndicatorKey = "adimplencia"
	SessoesPaciente IndicatorKey = "sessoes_paciente"
	Qualidade       IndicatorKey = "qualidade"
	Comparecimento  IndicatorKey = "comparecimento"
	EvolucaoORS     IndicatorKey = "evolucao_ors"
)

// Unit is the display convention of an indicator value.
type Unit string

// Units.
const (
	UnitDecimal Unit = "decimal"
	UnitPercent Unit = "percent"
	UnitScore10 Unit = "score10"
	UnitDelta   Unit = "delta"
)

// Indicator describes one tracked metric.
type Indicator struct {
	Key         IndicatorKey `json:"key"`
	Label       string       `json:"label"`
	Subtitle    string       `json:"subtitle"`
	Unit        Unit         `json:"unit"`
	FixedMax    float64      `json:"fixed_max,omitempty"` // zero scales from the data
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
}

// HasFixedMax reports whether the indicator is drawn on a bounded scale.
func (i Indicator) HasFixedMax() bool {
	return i.FixedMax > 0
}

// Indicators lists the indicators in display order.
var Indicators = []Indicator{ //nolint:gochecknoglobals // constant table
	{
		Key:         Adimplencia,
		Label:       "Adimplência",
		Subtitle:    "Pagamentos / Pacientes Ativos",
		Unit:        UnitPercent,
		FixedMax:    100,
		Icon:        "💰",
		Description: "Taxa de pacientes com pagamento registrado no período",
	},
	{
		Key:         SessoesPaciente,
		Label:       "Sessões por Paciente",
		Subtitle:    "Média de sessões realizadas",
		Unit:        UnitDecimal,
		Icon:        "📋",
		Description: "Número médio de sessões realizadas por paciente ativo",
	},
	{
		Key:         Qualidade,
		Label:       "Qualidade da Terapia",
		Subtitle:    "Média das avaliações (0-10)",
		Unit:        UnitScore10,
		FixedMax:    10,
		Icon:        "⭐",
		Description: "Nota média de qualidade geral atribuída pelos pacientes",
	},
	{
		Key:         Comparecimento,
		Label:       "Taxa de Comparecimento",
		Subtitle:    "Sessões realizadas / Total agendado",
		Unit:        UnitPercent,
		FixedMax:    100,
		Icon:        "✅",
		Description: "Percentual de sessões efetivamente realizadas",
	},
	{
		Key:         EvolucaoORS,
		Label:       "Evolução Clínica",
		Subtitle:    "Δ ORS (Saída − Entrada)",
		Unit:        UnitDelta,
		Icon:        "📈",
		Description: "Melhora média na pontuação ORS entre entrada e saída",
	},
}

// LookupIndicator returns the catalog entry for key.
func LookupIndicator(key IndicatorKey) (Indicator, bool) {
	for _, ind := range Indicators {
		if ind.Key == key {
			return ind, true
		}
	}
	return Indicator{}, false
}
