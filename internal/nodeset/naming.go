package nodeset

import "strings"

// DataTypeName maps a model entity name to its OPC UA data type name:
// capitalized camel case with a fixed DataType suffix.
//
// DataTypeName("Foo") == "FooDataType"
// DataTypeName("Some_URL") == "SomeUrlDataType"
func DataTypeName(identifier string) string {
	return capitalizedCamelCase(identifier) + "DataType"
}

// EnumLiteralName maps an enumeration literal name to its field name:
// capitalized camel case, no suffix.
//
// EnumLiteralName("RED") == "Red"
// EnumLiteralName("light_blue") == "LightBlue"
func EnumLiteralName(identifier string) string {
	return capitalizedCamelCase(identifier)
}

// FieldName maps a property name to its structure field name. Same rule
// as literal names.
func FieldName(identifier string) string {
	return capitalizedCamelCase(identifier)
}

// capitalizedCamelCase joins underscore-separated tokens, capitalizing
// each. All-caps tokens such as "URL" are normalized to title case;
// already-camel-cased tokens pass through, so the function is idempotent
// on its own output.
func capitalizedCamelCase(identifier string) string {
	var b strings.Builder
	for _, token := range strings.Split(identifier, "_") {
		if token == "" {
			continue
		}
		r := []rune(token)
		if len(r) > 1 && isAllUpper(r) {
			b.WriteRune(r[0])
			b.WriteString(strings.ToLower(string(r[1:])))
			continue
		}
		b.WriteString(strings.ToUpper(string(r[:1])))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

func isAllUpper(runes []rune) bool {
	for _, r := range runes {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
