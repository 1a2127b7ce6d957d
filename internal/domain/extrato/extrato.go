// Package extrato constrói o extrato histórico: a lista de pedidos de um
// período ordenada por data com saldo acumulado (serviço de domínio puro).
package extrato

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
)

// Filtro delimita o período e os filtros opcionais do extrato.
// DataInicio e DataFim são obrigatórios: sem período completo não há resultado.
type Filtro struct {
	DataInicio *time.Time
	DataFim    *time.Time
	ClienteID  string // opcional
	Status     string // opcional
}

// Entry é uma linha derivada do extrato (nunca persistida): o pedido mais o
// valor que ele movimenta e o saldo acumulado até ele, inclusive.
type Entry struct {
	Pedido         entity.Pedido
	ValorMovimento decimal.Decimal
	SaldoAcumulado decimal.Decimal
	DataBaixa      *time.Time // data do pedido quando EFETIVADO
}

// Resumo agrega os totais do período para exibição.
type Resumo struct {
	TotalGeral     decimal.Decimal // soma de valor_total do período
	TotalEfetivado decimal.Decimal // soma de valor_efetivado (ou valor_total) dos EFETIVADOS
	SaldoFinal     decimal.Decimal // saldo acumulado da última linha (0 se vazio)
}

// Build filtra, ordena e anota os pedidos com o saldo corrente. Computação
// pura e reexecutável: não muta os pedidos de entrada e produz um resultado
// independente a cada chamada.
//
// Ordenação ascendente por data, estável: pedidos de mesma data preservam a
// ordem relativa original. Pedidos CANCELADOS contribuem exatamente 0 ao
// saldo; EFETIVADOS contribuem valor_efetivado (ou valor_total na ausência)
// e recebem data de baixa.
func Build(pedidos []entity.Pedido, f Filtro) ([]Entry, Resumo) {
	resumo := Resumo{
		TotalGeral:     decimal.Zero,
		TotalEfetivado: decimal.Zero,
		SaldoFinal:     decimal.Zero,
	}
	if f.DataInicio == nil || f.DataFim == nil {
		return nil, resumo
	}

	filtrados := make([]entity.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.Data.Before(*f.DataInicio) || p.Data.After(*f.DataFim) {
			continue
		}
		if f.ClienteID != "" && p.ClienteID != f.ClienteID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		filtrados = append(filtrados, p)
	}

	sort.SliceStable(filtrados, func(i, j int) bool {
		return filtrados[i].Data.Before(filtrados[j].Data)
	})

	entries := make([]Entry, 0, len(filtrados))
	saldo := decimal.Zero
	for _, p := range filtrados {
		mov := valorMovimento(p)
		saldo = saldo.Add(mov)

		e := Entry{
			Pedido:         p,
			ValorMovimento: mov,
			SaldoAcumulado: saldo,
		}
		if p.Status == dompedido.StatusEfetivado {
			dataBaixa := p.Data
			e.DataBaixa = &dataBaixa
			resumo.TotalEfetivado = resumo.TotalEfetivado.Add(mov)
		}
		resumo.TotalGeral = resumo.TotalGeral.Add(p.ValorTotal)
		entries = append(entries, e)
	}
	resumo.SaldoFinal = saldo
	return entries, resumo
}

// valorMovimento: 0 para CANCELADO; senão valor_efetivado quando presente,
// com fallback para valor_total.
func valorMovimento(p entity.Pedido) decimal.Decimal {
	if p.Status == dompedido.StatusCancelado {
		return decimal.Zero
	}
	if p.ValorEfetivado != nil {
		return *p.ValorEfetivado
	}
	return p.ValorTotal
}
