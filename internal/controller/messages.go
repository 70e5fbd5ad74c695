package controller

// Operator-facing messages.
const (
	MsgOpenFailed      = "Erro ao abrir reserva"
	MsgDatesRequired   = "Preencha check-in e check-out"
	MsgDatesInvalid    = "Datas com formato inválido (use AAAA-MM-DD)"
	MsgCheckoutBefore  = "Checkout deve ser igual ou posterior ao checkin"
	MsgSaveFailed      = "Erro ao salvar reserva"
	MsgConfirmRemove   = "Remover reserva?"
	MsgRemoveFailed    = "Erro ao remover reserva"
	MsgConfirmCheckIn  = "Registrar check-in dessa reserva?"
	MsgCheckInFailed   = "Erro ao registrar check-in"
	MsgConfirmCheckOut = "Registrar checkout dessa reserva?"
	MsgCheckOutFailed  = "Erro ao registrar checkout"
	MsgInvalidWhatsApp = "Preencha um número de WhatsApp válido."
)
