package service

import (
	"regexp"
	"strings"
)

var (
	traitsFieldRe      = regexp.MustCompile(`(?i)TRAITS:\s*(.+)`)
	descriptionFieldRe = regexp.MustCompile(`(?i)DESCRIPTION:\s*(.+)`)
)

// ParseTraitReply extrae los campos TRAITS y DESCRIPTION de la
// respuesta del LLM. La respuesta del proveedor se trata como texto no
// confiable: cada campo ausente o vacío se reemplaza por el contenido
// genérico, solo ese campo. Nunca devuelve un resultado vacío.
func ParseTraitReply(raw string) TraitAnalysis {
	traits := append([]string(nil), defaultTraits...)
	if m := traitsFieldRe.FindStringSubmatch(raw); len(m) == 2 {
		var parsed []string
		for _, part := range strings.Split(m[1], ",") {
			if part = strings.TrimSpace(part); part != "" {
				parsed = append(parsed, part)
			}
		}
		if len(parsed) > 0 {
			traits = parsed
		}
	}

	description := defaultDescription
	if m := descriptionFieldRe.FindStringSubmatch(raw); len(m) == 2 {
		if d := strings.TrimSpace(m[1]); d != "" {
			description = d
		}
	}

	return TraitAnalysis{Traits: traits, Description: description}
}
