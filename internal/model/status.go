package model

// Status is the lifecycle position of a Solicitacao.
type Status string

const (
	StatusAguardandoLiberacao Status = "awaiting-release"
	StatusCotando             Status = "quoting"
	StatusAguardandoPagamento Status = "awaiting-payment"
	StatusPagamentoRealizado  Status = "payment-done"
	StatusAguardandoEntrega   Status = "awaiting-delivery"
	StatusEntregue            Status = "delivered"
	StatusRejeitada           Status = "rejected"
)

// StatusInicial is assigned to every new Solicitacao.
const StatusInicial = StatusAguardandoLiberacao

// TodosStatus lists the seven lifecycle states in board-lane order.
var TodosStatus = []Status{
	StatusAguardandoLiberacao,
	StatusCotando,
	StatusAguardandoPagamento,
	StatusPagamentoRealizado,
	StatusAguardandoEntrega,
	StatusEntregue,
	StatusRejeitada,
}

// Valid reports whether s is one of the seven lifecycle states.
func (s Status) Valid() bool {
	for _, v := range TodosStatus {
		if s == v {
			return true
		}
	}
	return false
}

// PodeTransicionar reports whether a request may move from s to alvo.
// Admins may move a request to any state, forward or backward, except out of
// rejected, which is terminal. Same-state moves are a caller-side no-op and
// are reported as not allowed here.
func (s Status) PodeTransicionar(alvo Status) bool {
	if !alvo.Valid() || s == alvo {
		return false
	}
	return s != StatusRejeitada
}
