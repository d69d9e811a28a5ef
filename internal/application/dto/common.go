package dto

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NumberText número tal como llegó: acepta un número JSON o un string. Cualquier otro valor
// (null, bool, objeto) queda vacío; la coerción a número la decide quien lo usa.
type NumberText string

// UnmarshalJSON implementa json.Unmarshaler.
func (n *NumberText) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	*n = ""
	if len(raw) == 0 {
		return nil
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*n = NumberText(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*n = NumberText(raw)
	}
	return nil
}

// String devuelve el texto crudo.
func (n NumberText) String() string { return string(n) }

// ReplaceResponse resultado de un reemplazo en bloque.
type ReplaceResponse struct {
	Applied bool `json:"applied"`
	Count   int  `json:"count"`
}
