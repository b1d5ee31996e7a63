package model

import (
	"strings"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
)

// Operator identifies the telecom provider a voucher belongs to.
type Operator string

const (
	OperatorComviq  Operator = "comviq"
	OperatorLyca    Operator = "lyca"
	OperatorTelia   Operator = "telia"
	OperatorHalebop Operator = "halebop"
)

// Operators lists every operator in display order.
var Operators = []Operator{OperatorComviq, OperatorLyca, OperatorTelia, OperatorHalebop}

// ParseOperator resolves an operator name case-insensitively.
func ParseOperator(raw string) (Operator, error) {
	op := Operator(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Operators {
		if op == known {
			return op, nil
		}
	}
	return "", domainErrors.ErrInvalidOperator
}

// Title returns the operator name as shown in the UI.
func (o Operator) Title() string {
	switch o {
	case OperatorComviq:
		return "Comviq"
	case OperatorLyca:
		return "Lyca"
	case OperatorTelia:
		return "Telia"
	case OperatorHalebop:
		return "Halebop"
	}
	return string(o)
}
