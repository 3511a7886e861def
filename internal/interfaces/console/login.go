package console

import (
	"context"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
)

type loginScreen struct{}

func (loginScreen) Show(ctx context.Context, a *App) Transition {
	a.say("login_title")
	name, ok := a.prompt("login_user")
	if !ok {
		return quit()
	}
	password, ok := a.prompt("login_password")
	if !ok {
		return quit()
	}

	sess, err := a.auth.Verify(ctx, dto.LoginRequest{Name: name, Password: password})
	if err != nil {
		a.report("login", "auth.verify", err, nil)
		return stay()
	}
	a.startSession(sess)
	a.sayf("login_welcome", map[string]any{"User": sess.UserName, "Role": sess.Role.String()})
	return replaceWith(homeScreen{})
}

type homeScreen struct{}

func (homeScreen) Show(_ context.Context, a *App) Transition {
	a.term.Println("")
	a.say("home_title")
	a.say("home_products")
	a.say("home_warehouses")
	a.say("home_exit")
	choice, ok := a.prompt("app_option")
	if !ok {
		return quit()
	}
	switch choice {
	case "1":
		return push(&productListScreen{})
	case "2":
		return push(&warehouseListScreen{})
	case "0":
		return quit()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}
