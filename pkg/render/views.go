package render

// Status is the render-facing name of a table's view state.
type Status string

const (
	StatusLoading   Status = "loading"
	StatusError     Status = "error"
	StatusEmpty     Status = "empty"
	StatusPopulated Status = "populated"
)

// Cell kinds understood by the bundled templates.
const (
	CellLabel    = "label"
	CellStrong   = "strong"
	CellPlain    = "plain"
	CellHeader   = "header"
	CellCount    = "count"
	CellCurrency = "currency"
	CellActions  = "actions"
)

// Column describes one table header cell.
type Column struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Align string `json:"align,omitempty"`
}

// Action is a control attached to a row or to the table as a whole. Actions
// with Method "post" render as forms; everything else renders as a link.
type Action struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
	Class  string `json:"class,omitempty"`
}

// Cell is a single formatted value. Text is already formatted for display;
// Sub renders as a secondary line (for example the country under a name).
type Cell struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Sub     string   `json:"sub,omitempty"`
	SubIcon string   `json:"subIcon,omitempty"`
	Align   string   `json:"align,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

// Row is one record rendered as cells.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Notice is a header/body message block (loading, error, empty).
type Notice struct {
	Header string   `json:"header"`
	Lines  []string `json:"lines,omitempty"`
	Icon   string   `json:"icon,omitempty"`
}

// TableView is the complete render model of a data table in one state.
type TableView struct {
	ID          string   `json:"id"`
	Status      Status   `json:"status"`
	Loading     string   `json:"loading,omitempty"`
	Notice      *Notice  `json:"notice,omitempty"`
	Columns     []Column `json:"columns,omitempty"`
	Rows        []Row    `json:"rows,omitempty"`
	Footer      string   `json:"footer,omitempty"`
	FooterIcon  string   `json:"footerIcon,omitempty"`
	PageActions []Action `json:"pageActions,omitempty"`
}

// FieldView is the render model of one field input.
type FieldView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	Placeholder  string `json:"placeholder,omitempty"`
	Required     bool   `json:"required"`
	MinLength    string `json:"minLength,omitempty"`
	MaxLength    string `json:"maxLength,omitempty"`
	Disabled     bool   `json:"disabled"`
	ReadOnly     bool   `json:"readOnly"`
	Autocomplete string `json:"autocomplete"`
}

// FieldRow groups fields rendered side by side.
type FieldRow struct {
	Key    string      `json:"key,omitempty"`
	Fields []FieldView `json:"fields"`
}

// DialogKind selects the dialog template.
type DialogKind string

const (
	DialogForm    DialogKind = "form"
	DialogConfirm DialogKind = "confirm"
	DialogNotice  DialogKind = "notice"
)

// DialogView is the render model of the single modal dialog.
type DialogView struct {
	ID          string        `json:"id"`
	Kind        DialogKind    `json:"kind"`
	Title       string        `json:"title"`
	Icon        string        `json:"icon,omitempty"`
	Action      string        `json:"action,omitempty"`
	Rows        []FieldRow    `json:"rows,omitempty"`
	Hidden      []HiddenField `json:"hidden,omitempty"`
	Message     string        `json:"message,omitempty"`
	Error       string        `json:"error,omitempty"`
	SubmitLabel string        `json:"submitLabel,omitempty"`
	CancelLabel string        `json:"cancelLabel,omitempty"`
	CancelHref  string        `json:"cancelHref,omitempty"`
}

// Link is a navigation entry in the page chrome.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// Chrome carries the static header/footer data and theme variables.
type Chrome struct {
	AppName     string   `json:"appName"`
	Home        string   `json:"home"`
	Version     string   `json:"version,omitempty"`
	BrandIcon   string   `json:"brandIcon,omitempty"`
	Nav         []Link   `json:"nav,omitempty"`
	FooterLinks []Link   `json:"footerLinks,omitempty"`
	Copyright   string   `json:"copyright"`
	CSSVars     string   `json:"cssVars,omitempty"`
	Stylesheets []string `json:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	Variant     string   `json:"variant,omitempty"`
}

// Section is a pre-rendered fragment placed in the page body.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Body  string `json:"body"`
}

// Page is a full document: chrome, sections, an optional dialog and alert.
type Page struct {
	Title         string    `json:"title"`
	Chrome        Chrome    `json:"chrome"`
	Sections      []Section `json:"sections,omitempty"`
	Dialog        string    `json:"dialog,omitempty"`
	Alerts        []string  `json:"alerts,omitempty"`
	ServiceWorker string    `json:"serviceWorker,omitempty"`
	ManifestHref  string    `json:"manifestHref,omitempty"`
}
