// Package rtn normaliza el Registro Tributario Nacional (Honduras) de los clientes.
package rtn

import "fmt"

// Length dígitos de un RTN (13 del DNI/registro + 1 de control).
const Length = 14

// Normalize quita espacios, puntos y guiones y exige 14 dígitos ASCII.
// taxID puede ser "0801-1990-123456", "0801 1990 123456" o "08011990123456".
func Normalize(taxID string) (string, error) {
	var digits []byte
	for _, r := range taxID {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case r == '-' || r == ' ' || r == '.':
		default:
			return "", fmt.Errorf("rtn: carácter inválido %q", r)
		}
	}
	if len(digits) != Length {
		return "", fmt.Errorf("rtn: debe tener %d dígitos, se encontraron %d", Length, len(digits))
	}
	return string(digits), nil
}

// Format presenta un RTN normalizado como ####-####-######.
func Format(normalized string) string {
	if len(normalized) != Length {
		return normalized
	}
	return normalized[:4] + "-" + normalized[4:8] + "-" + normalized[8:]
}
