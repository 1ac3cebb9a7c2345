package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// Respuesta es el sobre uniforme de toda la API:
// {success, data?, message?, error?, total?}.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// OK arma una respuesta exitosa con datos.
func OK(data any) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKMensaje arma una respuesta exitosa con datos y mensaje.
func OKMensaje(mensaje string, data any) Respuesta {
	return Respuesta{Success: true, Message: mensaje, Data: data}
}

// Lista arma una respuesta exitosa de colección con el total.
func Lista(data any, total int) Respuesta {
	return Respuesta{Success: true, Data: data, Total: &total}
}

// Fallo arma una respuesta de error con mensaje para el cliente.
func Fallo(mensaje string) Respuesta {
	return Respuesta{Success: false, Message: mensaje}
}

// FalloDetalle arma una respuesta de error con detalle interno (solo en desarrollo).
func FalloDetalle(mensaje, detalle string) Respuesta {
	return Respuesta{Success: false, Message: mensaje, Error: detalle}
}

// FlexBool acepta booleanos en las formas que envían los clientes del
// back-office: true/false, "true"/"false", "1"/"0" y 1/0.
type FlexBool bool

// UnmarshalJSON implementa la coerción.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	switch s {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("valor booleano inválido: %s", data)
		}
		*b = FlexBool(v)
	}
	return nil
}

// Bool devuelve el valor nativo.
func (b FlexBool) Bool() bool { return bool(b) }

// FlexInt acepta enteros en las formas que envían los clientes: 5, "5" y
// textos numéricos con decimales, que se truncan ("5.9" vale 5).
type FlexInt int

// UnmarshalJSON implementa la coerción.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	v, err := strconv.Atoi(s)
	if err != nil {
		f, errf := strconv.ParseFloat(s, 64)
		if errf != nil {
			return fmt.Errorf("valor entero inválido: %s", data)
		}
		v = int(f)
	}
	*n = FlexInt(v)
	return nil
}

// Int devuelve el valor nativo.
func (n FlexInt) Int() int { return int(n) }
