package pedido

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
	"github.com/vendapp/pedidos-api/internal/domain/extrato"
	dompedido "github.com/vendapp/pedidos-api/internal/domain/pedido"
	"github.com/vendapp/pedidos-api/internal/domain/repository"
)

// GetByID devolve o pedido com itens e o contador de trocas.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	trocas, err := uc.trocaRepo.CountByPedido(p.ID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p, trocas), nil
}

// List listagem não paginada com filtros. Um valor de status que não
// corresponda a nenhum estado conhecido é tratado como ausência de filtro
// (pass-through), preservando o comportamento observado do sistema.
func (uc *PedidoUseCase) List(f repository.PedidoFiltro) ([]dto.PedidoResponse, error) {
	if f.Status != "" && !dompedido.IsValidStatus(f.Status) {
		f.Status = ""
	}
	list, err := uc.pedidoRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPedidoResponse(p, 0))
	}
	return out, nil
}

// ListPaginado busca paginada por chave ou nome do cliente. A consulta é
// normalizada sem acentos ("João" e "joao" encontram o mesmo cliente).
func (uc *PedidoUseCase) ListPaginado(q, status string, page, limit int) (*dto.PedidoPaginadoResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if status != "" && !dompedido.IsValidStatus(status) {
		status = ""
	}

	offset := (page - 1) * limit
	list, total, err := uc.pedidoRepo.ListPaginado(removerAcentos(q), status, limit, offset)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		data = append(data, *toPedidoResponse(p, 0))
	}
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}
	return &dto.PedidoPaginadoResponse{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Extrato constrói o extrato do período: o agregador de domínio é puro, aqui
// só buscamos os pedidos e adaptamos o resultado. Período completo é
// obrigatório na borda.
func (uc *PedidoUseCase) Extrato(dataInicio, dataFim, clienteID, status string) (*dto.ExtratoResponse, error) {
	if dataInicio == "" || dataFim == "" {
		return nil, domain.NewValidationError("data_inicio e data_fim são obrigatórios")
	}
	inicio, err := parseData(dataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := parseData(dataFim)
	if err != nil {
		return nil, err
	}
	if fim.Before(inicio) {
		return nil, domain.NewValidationError("data_fim anterior a data_inicio")
	}
	if status != "" && !dompedido.IsValidStatus(status) {
		status = ""
	}

	list, err := uc.pedidoRepo.ListByPeriodo(inicio, fim, clienteID, status)
	if err != nil {
		return nil, err
	}
	pedidos := make([]entity.Pedido, 0, len(list))
	for _, p := range list {
		pedidos = append(pedidos, *p)
	}

	entries, resumo := extrato.Build(pedidos, extrato.Filtro{
		DataInicio: &inicio,
		DataFim:    &fim,
		ClienteID:  clienteID,
		Status:     status,
	})

	out := &dto.ExtratoResponse{
		Entries:        make([]dto.ExtratoEntryResponse, 0, len(entries)),
		TotalGeral:     resumo.TotalGeral,
		TotalEfetivado: resumo.TotalEfetivado,
		SaldoFinal:     resumo.SaldoFinal,
	}
	for _, e := range entries {
		entry := dto.ExtratoEntryResponse{
			PedidoID:       e.Pedido.ID,
			Chave:          e.Pedido.Chave,
			Data:           e.Pedido.Data.Format(dataLayout),
			Status:         e.Pedido.Status,
			ClienteID:      e.Pedido.ClienteID,
			ValorTotal:     e.Pedido.ValorTotal,
			ValorMovimento: e.ValorMovimento,
			SaldoAcumulado: e.SaldoAcumulado,
		}
		if e.DataBaixa != nil {
			s := e.DataBaixa.Format(dataLayout)
			entry.DataBaixa = &s
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

// removerAcentos normaliza a busca: decompõe (NFD), descarta as marcas
// combinantes e recompõe, além de baixar a caixa.
func removerAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

func toPedidoResponse(p *entity.Pedido, trocas int) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	itens := make([]dto.PedidoItemResponse, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, dto.PedidoItemResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			Embalagem:     item.Embalagem,
			ValorUnitario: item.ValorUnitario,
			Comissao:      item.Comissao,
			Subtotal:      item.Subtotal(),
		})
	}
	return &dto.PedidoResponse{
		ID:             p.ID,
		Chave:          p.Chave,
		Data:           p.Data.Format(dataLayout),
		Status:         p.Status,
		ClienteID:      p.ClienteID,
		RotaID:         p.RotaID,
		Itens:          itens,
		ValorTotal:     p.ValorTotal,
		ValorEfetivado: p.ValorEfetivado,
		Trocas:         trocas,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
