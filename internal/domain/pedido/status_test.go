package pedido_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/pedidos-api/internal/domain"
	"github.com/vendapp/pedidos-api/internal/domain/pedido"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabela de transições
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_CaminhosPermitidos(t *testing.T) {
	casos := []struct{ de, para string }{
		{pedido.StatusEmEspera, pedido.StatusConferir},
		{pedido.StatusEmEspera, pedido.StatusEfetivado},
		{pedido.StatusEmEspera, pedido.StatusCancelado},
		{pedido.StatusConferir, pedido.StatusEfetivado},
		{pedido.StatusConferir, pedido.StatusCancelado},
		{pedido.StatusConferir, pedido.StatusEmEspera}, // reversão
	}
	for _, c := range casos {
		assert.NoError(t, pedido.ValidateTransition(c.de, c.para),
			"%s -> %s deveria ser permitido", c.de, c.para)
	}
}

func TestValidateTransition_EstadosTerminaisBloqueiamTudo(t *testing.T) {
	destinos := []string{
		pedido.StatusEmEspera,
		pedido.StatusConferir,
		pedido.StatusEfetivado,
		pedido.StatusCancelado,
	}
	for _, de := range []string{pedido.StatusEfetivado, pedido.StatusCancelado} {
		for _, para := range destinos {
			err := pedido.ValidateTransition(de, para)
			require.Error(t, err, "%s -> %s deveria falhar", de, para)
			assert.True(t, errors.Is(err, domain.ErrConflict),
				"%s -> %s deveria ser conflito, obtido %v", de, para, err)
		}
	}
}

// EFETIVADO não reverte a EM_ESPERA; só CONFERIR admite reversão.
func TestValidateTransition_ReversaoSomenteDeConferir(t *testing.T) {
	err := pedido.ValidateTransition(pedido.StatusEfetivado, pedido.StatusEmEspera)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestValidateTransition_StatusDesconhecido(t *testing.T) {
	err := pedido.ValidateTransition(pedido.StatusEmEspera, "ENTREGUE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	err = pedido.ValidateTransition("RASCUNHO", pedido.StatusConferir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados auxiliares
// ──────────────────────────────────────────────────────────────────────────────

func TestIsTerminal(t *testing.T) {
	assert.False(t, pedido.IsTerminal(pedido.StatusEmEspera))
	assert.False(t, pedido.IsTerminal(pedido.StatusConferir))
	assert.True(t, pedido.IsTerminal(pedido.StatusEfetivado))
	assert.True(t, pedido.IsTerminal(pedido.StatusCancelado))
}

func TestPermiteAlterarItens(t *testing.T) {
	assert.True(t, pedido.PermiteAlterarItens(pedido.StatusEmEspera))
	assert.True(t, pedido.PermiteAlterarItens(pedido.StatusConferir))
	assert.False(t, pedido.PermiteAlterarItens(pedido.StatusEfetivado))
	assert.False(t, pedido.PermiteAlterarItens(pedido.StatusCancelado))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, pedido.IsValidStatus(pedido.StatusEmEspera))
	assert.True(t, pedido.IsValidStatus(pedido.StatusCancelado))
	assert.False(t, pedido.IsValidStatus("EM ESPERA"))
	assert.False(t, pedido.IsValidStatus(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Chave legível
// ──────────────────────────────────────────────────────────────────────────────

func TestNovaChave_FormatoEUnicidade(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		chave := pedido.NovaChave()
		require.Len(t, chave, 12, "PED- + 8 hex")
		assert.Equal(t, "PED-", chave[:4])
		assert.Regexp(t, "^PED-[0-9A-F]{8}$", chave)
		assert.False(t, vistos[chave], "chave repetida: %s", chave)
		vistos[chave] = true
	}
}
