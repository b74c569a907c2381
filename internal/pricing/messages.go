package pricing

// Текст для формы. Формы показывают его вместо "$0".
var userMessages = map[Reason]string{
	ReasonInvalidDateRange:   "La fecha de término debe ser igual o posterior a la fecha de inicio.",
	ReasonBelowMinimumStay:   "La estadía es menor al mínimo permitido para este espacio.",
	ReasonCapacityExceeded:   "La cantidad de personas supera la capacidad del espacio.",
	ReasonMissingTariffField: "El espacio no tiene configurada la tarifa para este tipo de uso.",
	ReasonEmptyParty:         "Debe indicar al menos una persona.",
	ReasonInvalidInput:       "Los datos de la reserva no son válidos.",
}

// UserMessage текст причины для пользователя (es-CL)
func UserMessage(reason Reason) string {
	return userMessages[reason]
}
