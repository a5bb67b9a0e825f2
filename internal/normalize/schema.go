package normalize

import "time"

// Column names as they appear in the sheet export. The export is maintained
// in Spanish by the recruiting team; these constants are the source contract.
const (
	colDate      = "Fecha"
	colPosition  = "Posicion"
	colRecruiter = "Nombre reclutador"
	colOpen      = "¿Posicion abierta?"

	colNewCandidates = "Recruitment. Candidatos nuevos"
	colIndeed        = "Recruitment. Candidatos Indeed"
	colDirectSearch  = "Recruitment. Busqueda directa"
	colCRM           = "Recruitment. Candidatos R.CRM"
	colAssigned      = "Recruitment. Assigned"
	colViable        = "Recruitment. Candidatos Viables"
	colTerna         = "Recruitment. Candidatos en terna"

	colCVMust       = "Screening. CV. MUST"
	colCVHardSkills = "Screening. CV. H.Skills"
	colCVSoftSkills = "Screening. CV. S.Skills"

	colRejectHardSkills = "Screening. CNV. Perfil no calificado (hard skills)"
	colRejectSoftSkills = "Screening. CNV. Soft Skills"
	colRejectBudget     = "Screening. CNV. Fuera de presupuesto"
	colRejectEnglish    = "Screening. CNV. Nivel de ingles"
	colRejectNoShow     = "Screening. CNV. No se presento / Inpuntual"
	colRejectLocation   = "Screening. CNV. Localidad"

	colClientChemistry     = "S. Cliente. Quimica personal"
	colClientInconsistency = "S. Cliente. Inconsistencias en expertise"
	colClientProfile       = "S. Cliente. No cumple con el perfil"
	colClientEnglish       = "S. Cliente. Nivel de ingles"
	colClientOverqualified = "S. Cliente. Sobrecalificado"

	colHired = "Candidatos contratados"
)

// Row is one normalized observation: one position, one recruiter, one day.
// Counters default to zero when the source cell is blank, a sentinel token,
// or the column is missing entirely. Rows are never mutated downstream;
// every aggregate reads rows and produces new values.
type Row struct {
	Date      time.Time
	Position  string
	Recruiter string

	// OpenState is the free-text open/closed field, lowercased and trimmed.
	// Only the literal "no" means closed; anything else counts as open or
	// unknown.
	OpenState string

	NewCandidates    int
	IndeedCandidates int
	DirectSearch     int
	CRMCandidates    int
	Assigned         int
	ViableCandidates int
	TernaCandidates  int

	CVMust       int
	CVHardSkills int
	CVSoftSkills int

	RejectHardSkills int
	RejectSoftSkills int
	RejectBudget     int
	RejectEnglish    int
	RejectNoShow     int
	RejectLocation   int

	ClientChemistry     int
	ClientInconsistency int
	ClientProfile       int
	ClientEnglish       int
	ClientOverqualified int

	Hired int
}

// Closed reports whether the row explicitly marks its position as closed.
func (r Row) Closed() bool {
	return r.OpenState == "no"
}
