// Package pdf implementa a geração do romaneio do pedido (folha de
// separação/entrega impressa pelos vendedores).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Chave do pedido + Data  │  Status                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Código + Nome                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Emb | Produto | V.Unit | Subtotal             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Valor total / Valor efetivado (se houver)           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apppedido "github.com/vendapp/pedidos-api/internal/application/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ apppedido.PedidoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa pedido.PedidoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePedidoPDF gera o PDF do romaneio e devolve seus bytes.
func (g *MarotoPDFGenerator) GeneratePedidoPDF(
	_ context.Context,
	p *entity.Pedido,
	cliente *entity.Cliente,
	produtos map[string]*entity.Produto,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Romaneio do Pedido "+p.Chave, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(p.Itens, produtos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: chave + data (esq) e status (dir).
func headerRow(p *entity.Pedido) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PEDIDO "+p.Chave, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Data: "+p.Data.Format("02/01/2006"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(p.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}

// clienteRow: dados do cliente.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %s", cliente.Codigo, cliente.Nome), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Emb.", 1, align.Center),
		h("Produto", 5, align.Left),
		h("V. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma linha por item do pedido.
func tableItemRows(itens []entity.PedidoItem, produtos map[string]*entity.Produto) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		nome := item.ProdutoID
		if p, ok := produtos[item.ProdutoID]; ok {
			nome = p.Codigo + " " + p.Nome
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				item.Quantidade.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				item.Embalagem,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+item.ValorUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+item.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(p *entity.Pedido) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	labels := col.New(3).Add(label("VALOR TOTAL:", 2))
	values := col.New(3).Add(value("R$ "+p.ValorTotal.StringFixed(2), 2))
	if p.ValorEfetivado != nil {
		labels = col.New(3).Add(
			label("VALOR TOTAL:", 2),
			label("EFETIVADO:", 9),
		)
		values = col.New(3).Add(
			value("R$ "+p.ValorTotal.StringFixed(2), 2),
			value("R$ "+p.ValorEfetivado.StringFixed(2), 9),
		)
	}

	return row.New(18).Add(
		col.New(3),
		labels,
		values,
		col.New(3),
	)
}
