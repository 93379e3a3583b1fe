// Package docs registra la definición OpenAPI de la API en swag.
package docs

import (
	_ "embed"
	"fmt"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerTemplate string

// SwaggerInfo metadatos del documento registrado.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "Caja API",
	Description:      "Caja diaria, cuenta corriente de clientes y comisiones por medio de pago.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// JSON devuelve el documento registrado, listo para servir en /docs.
func JSON() ([]byte, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("leer swagger: %w", err)
	}
	return []byte(doc), nil
}
