package pedido

import (
	"strings"

	"github.com/google/uuid"
)

// NovaChave gera a chave legível do pedido (ex. PED-3F6A2C1B).
// Os oito primeiros hex de um UUID v4 bastam para identificação humana;
// a unicidade real é garantida pelo ID.
func NovaChave() string {
	return "PED-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
