package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsoniter só aceita espaços como indentação
const indent = "  "

// PrettyJson formata qualquer valor (ou []byte já serializado) com indentação
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.MarshalIndent(in, "", indent)
		if err != nil {
			fmt.Println(err)
		}
		return string(buffer)
	}

	var v any
	if err = json.Unmarshal(buffer, &v); err != nil {
		fmt.Println(err)
		return string(buffer)
	}

	out, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		fmt.Println(err)
	}

	return string(out)
}
