// Package pedido contém os serviços de domínio do motor de pedidos:
// a máquina de estados do ciclo de vida e o cálculo de totais dos itens.
package pedido

import (
	"fmt"

	"github.com/vendapp/pedidos-api/internal/domain"
)

// Estados do ciclo de vida de um pedido.
//
//	EM_ESPERA ──> CONFERIR ──> EFETIVADO (terminal)
//	    │    <──────┘│
//	    └────────────┴──────> CANCELADO (terminal)
//
// EFETIVADO e CANCELADO são terminais: nenhuma transição ou alteração de
// itens é permitida depois de alcançados.
const (
	StatusEmEspera  = "EM_ESPERA"
	StatusConferir  = "CONFERIR"
	StatusEfetivado = "EFETIVADO"
	StatusCancelado = "CANCELADO"
)

// transicoes é a tabela de transições válidas (fonte única da verdade).
var transicoes = map[string][]string{
	StatusEmEspera:  {StatusConferir, StatusEfetivado, StatusCancelado},
	StatusConferir:  {StatusEfetivado, StatusCancelado, StatusEmEspera}, // reversão a EM_ESPERA permitida
	StatusEfetivado: {},
	StatusCancelado: {},
}

// IsValidStatus informa se s é um dos quatro estados conhecidos.
func IsValidStatus(s string) bool {
	_, ok := transicoes[s]
	return ok
}

// IsTerminal informa se o estado não admite mais transições nem alteração de itens.
func IsTerminal(s string) bool {
	return s == StatusEfetivado || s == StatusCancelado
}

// PermiteAlterarItens informa se o conjunto de itens ainda pode ser substituído.
func PermiteAlterarItens(s string) bool {
	return s == StatusEmEspera || s == StatusConferir
}

// ValidateTransition verifica se a transição de -> para é legal segundo a tabela.
// Retorna ErrConflict (embrulhado) quando o pedido está em estado terminal ou a
// transição não consta da tabela, e ErrInvalidInput para estados desconhecidos.
func ValidateTransition(de, para string) error {
	if !IsValidStatus(para) {
		return domain.NewValidationError(fmt.Sprintf("status %q desconhecido", para))
	}
	destinos, ok := transicoes[de]
	if !ok {
		return domain.NewValidationError(fmt.Sprintf("status atual %q desconhecido", de))
	}
	if IsTerminal(de) {
		return fmt.Errorf("pedido %s é terminal: %w", de, domain.ErrConflict)
	}
	for _, d := range destinos {
		if d == para {
			return nil
		}
	}
	return fmt.Errorf("transição %s -> %s não permitida: %w", de, para, domain.ErrConflict)
}
