// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roles

// Table holds the role-resolution rule data. It is immutable
// configuration injected at construction; tests run with reduced
// tables and deployments may override the defaults.
type Table struct {
	// Aliases maps surface role phrases (including abbreviated
	// spellings, normalized form) to a standardized role label.
	// Many phrases may map to one label.
	Aliases map[string]string

	// Retrospective qualifiers immediately after a role phrase mark a
	// past or caretaker holder.
	Retrospective []string

	// Prospective qualifiers immediately after a role phrase mark a
	// future or designated holder.
	Prospective []string

	// Conditional markers immediately before a role phrase mark
	// hypothetical framing.
	Conditional []string

	// Era markers anywhere in the window refer to a previous
	// government or period.
	Era []string

	// Demonyms anywhere in the window mark a foreign office.
	Demonyms []string
}

// DefaultTable returns the production Hebrew rule data. Role phrases
// are stored in normalized form (gershayim folded to `"`).
func DefaultTable() Table {
	return Table{
		Aliases: map[string]string{
			"ראש הממשלה":       "prime-minister",
			"ראש ממשלת ישראל":  "prime-minister",
			`רה"מ`:             "prime-minister",
			"שר הביטחון":       "defense-minister",
			"שר האוצר":         "finance-minister",
			"שר החוץ":          "foreign-minister",
			"שר המשפטים":       "justice-minister",
			"השר לביטחון לאומי": "national-security-minister",
			"נשיא המדינה":      "president",
			"יושב ראש הכנסת":   "knesset-speaker",
			`יו"ר הכנסת`:       "knesset-speaker",
			"ראש האופוזיציה":   "opposition-leader",
			`הרמטכ"ל`:          "chief-of-staff",
			"ראש עיריית ירושלים": "jerusalem-mayor",
		},
		Retrospective: []string{
			"לשעבר", "הקודם", "הקודמת", "היוצא", "היוצאת", "בדימוס", "דאז", "בפועל",
		},
		Prospective: []string{
			"הבא", "הבאה", "הנכנס", "הנכנסת", "המיועד", "המיועדת", "העתידי",
		},
		Conditional: []string{
			"מי שיהיה", "מי שהיה", "מי שיכהן", "מי שכיהן", "אם יהיה", "לו היה",
		},
		Era: []string{
			"הממשלה הקודמת", "בממשלה הקודמת", "ממשלת המעבר", "הקדנציה הקודמת",
		},
		Demonyms: []string{
			"הבריטי", "הבריטית", "האמריקאי", "האמריקני", "האמריקאית",
			"הצרפתי", "הצרפתית", "הגרמני", "הגרמנית", "הרוסי", "הרוסית",
			"האוקראיני", "הטורקי", "האיראני", "המצרי", "הירדני", "הלבנוני",
			"הסורי", "הסעודי", "הסיני", "ההודי", "האיטלקי", "הספרדי", "הפולני",
		},
	}
}
