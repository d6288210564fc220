package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsoniter só aceita espaços como indentação
const prettyIndent = "  "

// PrettyJson serializa o valor com indentação, usado para registrar payloads em log
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", prettyIndent)
	if err != nil {
		return ""
	}

	return string(buffer)
}
