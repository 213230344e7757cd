// Package roster holds the canonical participant-record domain: field
// families, header location, column mapping, and record partitioning.
package roster

// Field identifies a canonical record attribute, independent of how a
// source spreadsheet spells its column header.
type Field string

const (
	FieldPersonCode Field = "person_code"
	FieldFullName   Field = "full_name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
)

// AllFields lists the canonical fields in output-column order.
var AllFields = []Field{FieldPersonCode, FieldFullName, FieldEmail, FieldPhone}

// FieldFamilies maps each canonical field to its ordered set of
// acceptable header-label variants. Variants are stored lowercase and
// accent-folded; matching is against textnorm.Normalize output. The
// table is read-only configuration — never mutate it at runtime.
var FieldFamilies = map[Field][]string{
	FieldPersonCode: {
		"code perso", "code-personnel", "codepersonnel", "code", "id", "code personne",
	},
	FieldFullName: {
		"nom et prenom", "nom & prenom", "nom, prenom", "nom et prenoms",
		"nom et pr", "nom prenom", "nom/prenom",
		"full name", "name",
		"nom", // fallback single column
	},
	FieldEmail: {
		"courriel", "email", "e-mail", "adresse email", "adresse courriel",
	},
	FieldPhone: {
		"telephone", "tel", "no de telephone", "numero de telephone", "phone",
	},
}
