package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/pedidos-api/internal/application/dto"
	"github.com/vendapp/pedidos-api/internal/application/usecase"
	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/entity"
)

func novoVinculoUC() (*usecase.VinculoUseCase, *stubVinculoRepo) {
	vinculoRepo := &stubVinculoRepo{}
	clienteRepo := &stubClienteRepo{clientes: map[string]*entity.Cliente{
		"c1": {ID: "c1", Codigo: "CL001", Nome: "Mercado São João"},
	}}
	produtoRepo := &stubProdutoRepo{produtos: map[string]*entity.Produto{
		"p1": {ID: "p1", Codigo: "PR001", Nome: "Farinha 1kg", PrecoBase: dec("10.00")},
	}}
	return usecase.NewVinculoUseCase(vinculoRepo, clienteRepo, produtoRepo), vinculoRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação de vínculos
// ──────────────────────────────────────────────────────────────────────────────

func TestVinculoCreate_Basico(t *testing.T) {
	uc, _ := novoVinculoUC()
	out, err := uc.Create(dto.CreateVinculoRequest{
		ClienteID: "c1", ProdutoID: "p1", Preco: dec("8.50"),
	})
	require.NoError(t, err)
	assert.True(t, out.Preco.Equal(dec("8.50")))
}

// Preço zero ou negativo é rejeitado na borda.
func TestVinculoCreate_PrecoDevePositivo(t *testing.T) {
	uc, _ := novoVinculoUC()

	_, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("-1")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// No máximo um vínculo por par cliente×produto.
func TestVinculoCreate_ParDuplicado(t *testing.T) {
	uc, _ := novoVinculoUC()
	_, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("8.50")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("9.00")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestVinculoCreate_ReferenciasDevemExistir(t *testing.T) {
	uc, _ := novoVinculoUC()

	_, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "fantasma", ProdutoID: "p1", Preco: dec("8.50")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "fantasma", Preco: dec("8.50")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Atualização e remoção
// ──────────────────────────────────────────────────────────────────────────────

func TestVinculoUpdatePreco(t *testing.T) {
	uc, _ := novoVinculoUC()
	criado, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("8.50")})
	require.NoError(t, err)

	out, err := uc.UpdatePreco(criado.ID, dec("9.90"))
	require.NoError(t, err)
	assert.True(t, out.Preco.Equal(dec("9.90")))

	_, err = uc.UpdatePreco(criado.ID, dec("0"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.UpdatePreco("fantasma", dec("1.00"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVinculoDelete(t *testing.T) {
	uc, repo := novoVinculoUC()
	criado, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("8.50")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criado.ID))
	assert.Empty(t, repo.vinculos)

	err = uc.Delete(criado.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVinculoListByCliente(t *testing.T) {
	uc, _ := novoVinculoUC()
	_, err := uc.Create(dto.CreateVinculoRequest{ClienteID: "c1", ProdutoID: "p1", Preco: dec("8.50")})
	require.NoError(t, err)

	out, err := uc.ListByCliente("c1")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.ListByCliente("c2")
	require.NoError(t, err)
	assert.Empty(t, out)
}
