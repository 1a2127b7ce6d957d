package extrato_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/extrato"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dia(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func ped(id, clienteID, status string, data time.Time, total string) entity.Pedido {
	return entity.Pedido{
		ID:         id,
		Chave:      "PED-" + id,
		Data:       data,
		Status:     status,
		ClienteID:  clienteID,
		ValorTotal: dec(total),
	}
}

func filtro(inicio, fim time.Time) extrato.Filtro {
	return extrato.Filtro{DataInicio: &inicio, DataFim: &fim}
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo acumulado
// ──────────────────────────────────────────────────────────────────────────────

// Dois pedidos efetivados em dias seguidos: o saldo corre 46.50 -> 126.50.
func TestBuild_SaldoCorrente(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("a", "c1", dompedido.StatusEfetivado, dia(1), "46.50"),
		ped("b", "c1", dompedido.StatusEfetivado, dia(2), "80.00"),
	}
	entries, resumo := extrato.Build(pedidos, filtro(dia(1), dia(31)))

	require.Len(t, entries, 2)
	assert.True(t, entries[0].SaldoAcumulado.Equal(dec("46.50")))
	assert.True(t, entries[1].SaldoAcumulado.Equal(dec("126.50")))
	assert.True(t, resumo.SaldoFinal.Equal(dec("126.50")))
	assert.True(t, resumo.TotalGeral.Equal(dec("126.50")))
}

// Pedido CANCELADO aparece na lista mas movimenta exatamente zero:
// D1 efetivado 80, D2 cancelado — o saldo permanece 80.
func TestBuild_CanceladoContribuiZero(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("a", "c1", dompedido.StatusEfetivado, dia(1), "80.00"),
		ped("b", "c1", dompedido.StatusCancelado, dia(2), "55.00"),
	}
	entries, resumo := extrato.Build(pedidos, filtro(dia(1), dia(31)))

	require.Len(t, entries, 2)
	assert.True(t, entries[1].ValorMovimento.IsZero())
	assert.True(t, entries[1].SaldoAcumulado.Equal(dec("80.00")), "cancelado não move o saldo")
	assert.True(t, resumo.SaldoFinal.Equal(dec("80.00")))
	// TotalGeral soma valor_total de tudo, inclusive cancelados.
	assert.True(t, resumo.TotalGeral.Equal(dec("135.00")))
}

// EFETIVADO com valor_efetivado preenchido movimenta esse valor, não o total.
func TestBuild_EfetivadoUsaValorEfetivado(t *testing.T) {
	p := ped("a", "c1", dompedido.StatusEfetivado, dia(5), "100.00")
	ve := dec("95.00")
	p.ValorEfetivado = &ve

	entries, resumo := extrato.Build([]entity.Pedido{p}, filtro(dia(1), dia(31)))

	require.Len(t, entries, 1)
	assert.True(t, entries[0].ValorMovimento.Equal(dec("95.00")))
	assert.True(t, resumo.TotalEfetivado.Equal(dec("95.00")))
	assert.True(t, resumo.TotalGeral.Equal(dec("100.00")))
}

// EFETIVADO sem valor_efetivado cai no valor_total e recebe data de baixa.
func TestBuild_EfetivadoSemValorEfetivadoUsaTotal(t *testing.T) {
	entries, _ := extrato.Build(
		[]entity.Pedido{ped("a", "c1", dompedido.StatusEfetivado, dia(5), "100.00")},
		filtro(dia(1), dia(31)),
	)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].ValorMovimento.Equal(dec("100.00")))
	require.NotNil(t, entries[0].DataBaixa)
	assert.Equal(t, dia(5), *entries[0].DataBaixa)
}

// Pedidos ainda abertos não têm data de baixa.
func TestBuild_AbertoSemDataBaixa(t *testing.T) {
	entries, _ := extrato.Build(
		[]entity.Pedido{ped("a", "c1", dompedido.StatusEmEspera, dia(5), "10.00")},
		filtro(dia(1), dia(31)),
	)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].DataBaixa)
	assert.True(t, entries[0].ValorMovimento.Equal(dec("10.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de período e ordenação
// ──────────────────────────────────────────────────────────────────────────────

// As bordas do período são inclusivas dos dois lados.
func TestBuild_PeriodoInclusivo(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("antes", "c1", dompedido.StatusEmEspera, dia(4), "1.00"),
		ped("inicio", "c1", dompedido.StatusEmEspera, dia(5), "2.00"),
		ped("fim", "c1", dompedido.StatusEmEspera, dia(10), "3.00"),
		ped("depois", "c1", dompedido.StatusEmEspera, dia(11), "4.00"),
	}
	entries, _ := extrato.Build(pedidos, filtro(dia(5), dia(10)))

	require.Len(t, entries, 2)
	assert.Equal(t, "inicio", entries[0].Pedido.ID)
	assert.Equal(t, "fim", entries[1].Pedido.ID)
}

// Sem período completo não há resultado.
func TestBuild_PeriodoObrigatorio(t *testing.T) {
	inicio := dia(1)
	pedidos := []entity.Pedido{ped("a", "c1", dompedido.StatusEmEspera, dia(5), "1.00")}

	entries, resumo := extrato.Build(pedidos, extrato.Filtro{DataInicio: &inicio})
	assert.Empty(t, entries)
	assert.True(t, resumo.SaldoFinal.IsZero())

	entries, _ = extrato.Build(pedidos, extrato.Filtro{})
	assert.Empty(t, entries)
}

// Ordenação ascendente por data, estável: mesma data preserva a ordem original.
func TestBuild_OrdenacaoEstavel(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("c", "c1", dompedido.StatusEmEspera, dia(3), "1.00"),
		ped("a1", "c1", dompedido.StatusEmEspera, dia(1), "1.00"),
		ped("a2", "c1", dompedido.StatusEmEspera, dia(1), "1.00"),
		ped("b", "c1", dompedido.StatusEmEspera, dia(2), "1.00"),
	}
	entries, _ := extrato.Build(pedidos, filtro(dia(1), dia(31)))

	require.Len(t, entries, 4)
	assert.Equal(t, "a1", entries[0].Pedido.ID)
	assert.Equal(t, "a2", entries[1].Pedido.ID)
	assert.Equal(t, "b", entries[2].Pedido.ID)
	assert.Equal(t, "c", entries[3].Pedido.ID)
}

func TestBuild_FiltroClienteEStatus(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("a", "c1", dompedido.StatusEfetivado, dia(1), "10.00"),
		ped("b", "c2", dompedido.StatusEfetivado, dia(2), "20.00"),
		ped("c", "c1", dompedido.StatusCancelado, dia(3), "30.00"),
	}

	f := filtro(dia(1), dia(31))
	f.ClienteID = "c1"
	entries, _ := extrato.Build(pedidos, f)
	require.Len(t, entries, 2)

	f.Status = dompedido.StatusEfetivado
	entries, _ = extrato.Build(pedidos, f)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Pedido.ID)
}

// Build é pura: não muta a fatia de entrada e produz o mesmo resultado
// em chamadas repetidas.
func TestBuild_Reexecutavel(t *testing.T) {
	pedidos := []entity.Pedido{
		ped("b", "c1", dompedido.StatusEfetivado, dia(2), "20.00"),
		ped("a", "c1", dompedido.StatusEfetivado, dia(1), "10.00"),
	}
	e1, r1 := extrato.Build(pedidos, filtro(dia(1), dia(31)))
	e2, r2 := extrato.Build(pedidos, filtro(dia(1), dia(31)))

	require.Len(t, e1, 2)
	require.Len(t, e2, 2)
	assert.True(t, r1.SaldoFinal.Equal(r2.SaldoFinal))
	assert.Equal(t, "b", pedidos[0].ID, "entrada não deve ser reordenada")
}
