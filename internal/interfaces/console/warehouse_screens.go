package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

type warehouseListScreen struct {
	filter dto.WarehouseFilterRequest
	items  []dto.WarehouseResponse
}

func (s *warehouseListScreen) Show(ctx context.Context, a *App) Transition {
	a.term.Println("")
	a.say("warehouse_title")
	s.load(ctx, a)

	writable := a.canWrite(entity.ResourceWarehouse)
	if writable {
		a.say("list_commands")
	} else {
		a.say("app_readonly")
		a.say("list_commands_readonly")
	}
	in, ok := a.prompt("app_option")
	if !ok {
		return quit()
	}
	cmd := parseCommand(in)
	switch cmd.verb {
	case "n":
		if !writable {
			a.say("app_readonly")
			return stay()
		}
		s.filter = dto.WarehouseFilterRequest{}
		return push(newWarehouseForm(CreateMode{}))
	case "e":
		id, ok := cmd.id()
		if !ok {
			a.say("list_bad_id")
			return stay()
		}
		s.filter = dto.WarehouseFilterRequest{}
		return push(newWarehouseForm(EditMode{ID: id}))
	case "f":
		s.askFilters(a)
		return stay()
	case "r", "":
		s.filter = dto.WarehouseFilterRequest{}
		return stay()
	case "p":
		s.export(ctx, a)
		return stay()
	case "v":
		return pop()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}

func (s *warehouseListScreen) load(ctx context.Context, a *App) {
	res, err := a.warehouses.List(ctx, s.filter)
	if err != nil {
		s.items = nil
		a.report("warehouse", "warehouse.list", err, nil)
		return
	}
	s.items = res.Items
	rows := make([][]string, 0, len(res.Items))
	for _, w := range res.Items {
		rows = append(rows, []string{
			strconv.FormatInt(w.ID, 10),
			w.Name,
			dateOf(w.LastModified),
			w.LastModifiedBy,
		})
	}
	renderTable(a.term.Writer(), []string{
		a.msg.T("field_id"), a.msg.T("field_name"),
		a.msg.T("field_last_modified"), a.msg.T("field_last_modified_by"),
	}, rows)
	describeResult(a, res.Meta, warehouseFilterLabels(a, s.filter))
}

func (s *warehouseListScreen) askFilters(a *App) {
	a.say("filter_title")
	a.say("filter_hint")
	var f dto.WarehouseFilterRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"field_name", &f.Name},
		{"field_last_modified_by", &f.LastModifiedBy},
		{"filter_date", &f.LastModifiedDate},
	}
	for _, fd := range fields {
		v, ok := a.prompt(fd.label)
		if !ok {
			return
		}
		*fd.dst = v
	}
	s.filter = f
}

func (s *warehouseListScreen) export(ctx context.Context, a *App) {
	at := a.now()
	data, err := a.reports.WarehouseReport(ctx, s.items, pdf.ReportMeta{
		Author:  a.sess.UserName,
		At:      at,
		Filters: warehouseFilterLabels(a, s.filter),
	})
	if err != nil {
		a.report("warehouse", "warehouse.report", err, nil)
		return
	}
	path, err := pdf.Save(a.reportDir, "almacenes", at, data)
	if err != nil {
		a.report("warehouse", "warehouse.report", err, nil)
		return
	}
	a.log.Info().Str("op", "warehouse.report").Str("path", path).Int("rows", len(s.items)).Msg("reporte generado")
	a.sayf("report_saved", map[string]any{"Path": path})
}

func warehouseFilterLabels(a *App, f dto.WarehouseFilterRequest) []string {
	return filterLabels(a, []labeled{
		{"field_name", f.Name},
		{"field_last_modified_by", f.LastModifiedBy},
		{"field_last_modified", f.LastModifiedDate},
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario
// ──────────────────────────────────────────────────────────────────────────────

type warehouseForm struct {
	target EditTarget
	draft  dto.WarehouseInput
	dirty  bool
}

func newWarehouseForm(target EditTarget) *warehouseForm {
	return &warehouseForm{target: target}
}

func (f *warehouseForm) Show(ctx context.Context, a *App) Transition {
	a.term.Println("")
	switch t := f.target.(type) {
	case CreateMode:
		return f.showCreate(ctx, a)
	case EditMode:
		return f.showEdit(ctx, a, t.ID)
	default:
		return pop()
	}
}

func (f *warehouseForm) showCreate(ctx context.Context, a *App) Transition {
	a.say("warehouse_form_new")
	if !f.collect(a) {
		return quit()
	}
	a.say("form_actions_new")
	choice, ok := a.prompt("app_option")
	if !ok {
		return quit()
	}
	switch choice {
	case "g":
		out, err := a.warehouses.Create(ctx, a.sess, f.draft)
		if err != nil {
			a.report("warehouse", "warehouse.create", err, map[string]any{"Name": strings.TrimSpace(f.draft.Name)})
			return stay()
		}
		a.log.Info().Str("op", "warehouse.create").Int64("id", out.ID).Msg("almacén creado")
		a.say("warehouse_saved")
		f.draft = dto.WarehouseInput{}
		return stay()
	case "v":
		return pop()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}

func (f *warehouseForm) showEdit(ctx context.Context, a *App, id int64) Transition {
	current, err := a.warehouses.GetByID(ctx, id)
	if err != nil {
		a.report("warehouse", "warehouse.get", err, nil)
		return pop()
	}
	if !f.dirty {
		f.draft = dto.WarehouseInput{Name: current.Name}
	}
	a.sayf("warehouse_form_edit", map[string]any{"ID": id})
	renderPairs(a.term.Writer(), [][2]string{
		{a.msg.T("field_name"), current.Name},
		{a.msg.T("field_last_modified"), dateOf(current.LastModified)},
		{a.msg.T("field_last_modified_by"), current.LastModifiedBy},
	})

	writable := a.canWrite(entity.ResourceWarehouse)
	if writable {
		a.say("form_actions_edit")
	} else {
		a.say("app_readonly")
		a.say("form_actions_readonly")
	}
	choice, ok := a.prompt("app_option")
	if !ok {
		return quit()
	}
	switch choice {
	case "a":
		if !writable {
			a.say("app_readonly")
			return stay()
		}
		if !f.collect(a) {
			return quit()
		}
		f.dirty = true
		if _, err := a.warehouses.Update(ctx, a.sess, id, f.draft); err != nil {
			a.report("warehouse", "warehouse.update", err, map[string]any{"Name": strings.TrimSpace(f.draft.Name)})
			return stay()
		}
		f.dirty = false
		a.log.Info().Str("op", "warehouse.update").Int64("id", id).Msg("almacén actualizado")
		a.say("warehouse_updated")
		return stay()
	case "d":
		if !writable {
			a.say("app_readonly")
			return stay()
		}
		yes, ok := a.confirm(current.Name)
		if !ok {
			return quit()
		}
		if !yes {
			return stay()
		}
		if err := a.warehouses.Delete(ctx, a.sess, id); err != nil {
			a.report("warehouse", "warehouse.delete", err, nil)
			return stay()
		}
		a.log.Info().Str("op", "warehouse.delete").Int64("id", id).Msg("almacén eliminado")
		a.say("warehouse_deleted")
		return pop()
	case "v":
		return pop()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}

func (f *warehouseForm) collect(a *App) bool {
	a.say("form_hint")
	v, ok := a.ask("field_name", f.draft.Name)
	if !ok {
		return false
	}
	f.draft.Name = v
	return true
}
