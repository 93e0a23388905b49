package constvars

const (
	LoginSuccess               = "Inicio de sesión exitoso"
	LogoutSuccess              = "Sesión cerrada"
	SessionRefreshSuccess      = "Sesión renovada"
	ProfileRetrievedSuccess    = "Perfil obtenido"
	UsuarioCreatedSuccess      = "Usuario creado"
	UsuarioUpdatedSuccess      = "Usuario actualizado"
	UsuariosRetrievedSuccess   = "Usuarios obtenidos"
	RolesAssignedSuccess       = "Roles asignados"
	ConsultorioCreatedSuccess  = "Consultorio creado"
	ConsultorioUpdatedSuccess  = "Consultorio actualizado"
	ConsultorioDeletedSuccess  = "Consultorio eliminado"
	ConsultoriosListSuccess    = "Consultorios obtenidos"
	LogoUploadedSuccess        = "Logo actualizado"
	CitasRetrievedSuccess      = "Citas obtenidas"
	DashboardRetrievedSuccess  = "Resumen de citas obtenido"
	MetodoPagoSavedSuccess     = "Método de pago guardado"
	MetodosPagoListSuccess     = "Métodos de pago obtenidos"
	MetodoPagoDeletedSuccess   = "Método de pago eliminado"
	HorarioSavedSuccess        = "Horario guardado"
	HorariosListSuccess        = "Horarios obtenidos"
	VinculacionStartedSuccess  = "Vinculación iniciada"
	VinculacionCallbackSuccess = "Autorización recibida"
	VinculacionDoneSuccess     = "WhatsApp Business vinculado"
	VinculacionStatusSuccess   = "Estado de vinculación obtenido"
	ModulosRetrievedSuccess    = "Módulos obtenidos"
)
