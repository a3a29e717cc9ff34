package availability

// Сообщения валидации показываются пользователю как есть
const (
	MsgBarberRequired       = "Debes seleccionar un barbero"
	MsgDateTimeRequired     = "Debes seleccionar fecha y hora"
	MsgServiceRequired      = "Debes seleccionar un servicio"
	MsgClosedOnSundays      = "Los domingos no hay servicio"
	MsgClosedDay            = "Este día no hay servicio"
	MsgOutsideBusinessHours = "La hora seleccionada está fuera del horario de atención"
	MsgPastDate             = "No puedes agendar citas en el pasado"
	MsgUnknownService       = "El servicio seleccionado no está disponible"
)

var dayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}
