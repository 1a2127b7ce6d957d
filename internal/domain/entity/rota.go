package entity

import "time"

// Rota agrupa clientes e pedidos para entrega e relatórios.
// Nenhum cálculo depende dela além do agrupamento.
type Rota struct {
	ID        string
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
