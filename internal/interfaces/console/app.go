// Package console implementa la interfaz interactiva de terminal: inicio de
// sesión, menú principal, listados con filtros y formularios de edición.
package console

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/application/session"
	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/i18n"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-unison/pkg/logger"
)

// Authenticator verifica credenciales.
type Authenticator interface {
	Verify(ctx context.Context, in dto.LoginRequest) (*session.Session, error)
}

// ProductService casos de uso de productos que usa la terminal.
type ProductService interface {
	List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Create(ctx context.Context, sess *session.Session, in dto.ProductInput) (*dto.ProductResponse, error)
	Update(ctx context.Context, sess *session.Session, id int64, in dto.ProductInput) (*dto.ProductResponse, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

// WarehouseService casos de uso de almacenes que usa la terminal.
type WarehouseService interface {
	List(ctx context.Context, in dto.WarehouseFilterRequest) (*dto.WarehouseListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error)
	Names(ctx context.Context) ([]string, error)
	Create(ctx context.Context, sess *session.Session, in dto.WarehouseInput) (*dto.WarehouseResponse, error)
	Update(ctx context.Context, sess *session.Session, id int64, in dto.WarehouseInput) (*dto.WarehouseResponse, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

// ReportRenderer genera los PDF de los listados.
type ReportRenderer interface {
	ProductReport(ctx context.Context, items []dto.ProductResponse, meta pdf.ReportMeta) ([]byte, error)
	WarehouseReport(ctx context.Context, items []dto.WarehouseResponse, meta pdf.ReportMeta) ([]byte, error)
}

// Deps dependencias de la aplicación de terminal.
type Deps struct {
	Auth       Authenticator
	Products   ProductService
	Warehouses WarehouseService
	Reports    ReportRenderer
	Messages   *i18n.Translator
	Log        *logger.Logger
	In         io.Reader
	Out        io.Writer
	ReportDir  string
}

// App aplicación interactiva. La sesión se fija al iniciar sesión y vive hasta salir.
type App struct {
	auth       Authenticator
	products   ProductService
	warehouses WarehouseService
	reports    ReportRenderer
	msg        *i18n.Translator
	log        *logger.Logger
	term       *Terminal
	reportDir  string
	now        func() time.Time

	sess *session.Session
}

// NewApp construye la aplicación.
func NewApp(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	dir := d.ReportDir
	if dir == "" {
		dir = "."
	}
	return &App{
		auth:       d.Auth,
		products:   d.Products,
		warehouses: d.Warehouses,
		reports:    d.Reports,
		msg:        d.Messages,
		log:        log,
		term:       NewTerminal(d.In, d.Out),
		reportDir:  dir,
		now:        time.Now,
	}
}

// Run arranca en la pantalla de inicio de sesión y termina al salir o al agotarse la entrada.
func (a *App) Run(ctx context.Context) error {
	err := NewNavigator(loginScreen{}).Run(ctx, a)
	if a.sess != nil {
		a.log.Info().Msg("sesión finalizada")
	}
	a.say("app_bye")
	return err
}

// Session sesión activa; nil antes del login.
func (a *App) Session() *session.Session {
	return a.sess
}

func (a *App) startSession(sess *session.Session) {
	a.sess = sess
	a.log = a.log.With(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", sess.ID.String()).
			Str("user", sess.UserName).
			Str("role", string(sess.Role))
	})
	a.log.Info().Msg("sesión iniciada")
}

func (a *App) canWrite(res entity.Resource) bool {
	return a.sess.CanWrite(res)
}

func (a *App) say(msgID string) {
	a.term.Println(a.msg.T(msgID))
}

func (a *App) sayf(msgID string, data map[string]any) {
	a.term.Println(a.msg.Tf(msgID, data))
}

func (a *App) prompt(labelID string) (string, bool) {
	return a.term.Prompt(a.msg.T(labelID))
}

// ask pide un campo de formulario mostrando el valor actual. Enter conserva current y
// Clear deja el campo vacío.
func (a *App) ask(labelID, current string) (string, bool) {
	label := a.msg.T(labelID)
	if current != "" {
		label += " [" + current + "]"
	}
	v, ok := a.term.Prompt(label)
	if !ok {
		return "", false
	}
	switch v {
	case "":
		return current, true
	case Clear:
		return "", true
	default:
		return v, true
	}
}

// confirm pide una confirmación s/n.
func (a *App) confirm(name string) (yes, ok bool) {
	v, ok := a.term.Prompt(a.msg.Tf("app_confirm_delete", map[string]any{"Name": name}))
	if !ok {
		return false, false
	}
	return v == a.msg.T("app_yes"), true
}

// validationMessages traduce recurso/campo/motivo a un mensaje.
var validationMessages = map[string]string{
	"login/name/" + domain.ReasonRequired:          "login_required",
	"login/password/" + domain.ReasonRequired:      "login_required",
	"product/name/" + domain.ReasonRequired:        "product_required",
	"product/warehouse/" + domain.ReasonRequired:   "product_required",
	"product/warehouse/" + domain.ReasonUnknown:    "product_warehouse_unknown",
	"product/price/" + domain.ReasonNotNumeric:     "product_price_not_numeric",
	"product/quantity/" + domain.ReasonNotInteger:  "product_quantity_not_integer",
	"product/price_min/" + domain.ReasonNotNumeric: "filter_price_min_not_numeric",
	"product/price_max/" + domain.ReasonNotNumeric: "filter_price_max_not_numeric",
	"warehouse/name/" + domain.ReasonRequired:      "warehouse_required",
}

// report muestra el mensaje de err y lo registra. Ningún error detiene la aplicación.
func (a *App) report(scope, op string, err error, data map[string]any) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		id, ok := validationMessages[scope+"/"+verr.Field+"/"+verr.Reason]
		if !ok {
			a.sayf("app_unexpected", map[string]any{"Error": err.Error()})
			break
		}
		a.sayf(id, data)
		a.log.Debug().Str("op", op).Str("field", verr.Field).Str("reason", verr.Reason).Msg("entrada rechazada")
		return
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.say("login_invalid")
	case errors.Is(err, domain.ErrDuplicate):
		a.sayf("warehouse_duplicate", data)
	case errors.Is(err, domain.ErrWarehouseInUse):
		a.say("warehouse_in_use")
	case errors.Is(err, domain.ErrNotFound):
		a.say("app_not_found")
	case errors.Is(err, domain.ErrForbidden):
		a.say("app_forbidden")
	case errors.Is(err, context.Canceled):
		return
	default:
		a.sayf("app_unexpected", map[string]any{"Error": err.Error()})
		a.log.Error().Err(err).Str("op", op).Msg("operación fallida")
		return
	}
	a.log.Warn().Err(err).Str("op", op).Msg("operación rechazada")
}
