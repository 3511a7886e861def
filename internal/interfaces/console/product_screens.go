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

type productListScreen struct {
	filter dto.ProductFilterRequest
	items  []dto.ProductResponse
}

func (s *productListScreen) Show(ctx context.Context, a *App) Transition {
	a.term.Println("")
	a.say("product_title")
	s.load(ctx, a)

	writable := a.canWrite(entity.ResourceProduct)
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
		names, err := a.warehouses.Names(ctx)
		if err != nil {
			a.report("product", "warehouse.names", err, nil)
			return stay()
		}
		if len(names) == 0 {
			a.say("product_no_warehouses")
			return stay()
		}
		s.filter = dto.ProductFilterRequest{}
		return push(newProductForm(CreateMode{}))
	case "e":
		id, ok := cmd.id()
		if !ok {
			a.say("list_bad_id")
			return stay()
		}
		s.filter = dto.ProductFilterRequest{}
		return push(newProductForm(EditMode{ID: id}))
	case "f":
		s.askFilters(ctx, a)
		return stay()
	case "r", "":
		s.filter = dto.ProductFilterRequest{}
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

func (s *productListScreen) load(ctx context.Context, a *App) {
	res, err := a.products.List(ctx, s.filter)
	if err != nil {
		s.items = nil
		a.report("product", "product.list", err, nil)
		return
	}
	s.items = res.Items
	rows := make([][]string, 0, len(res.Items))
	for _, p := range res.Items {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			decimalOf(p.Price),
			intOf(p.Quantity),
			textOf(p.Department),
			p.WarehouseName,
			dateOf(p.LastModified),
			p.LastModifiedBy,
		})
	}
	renderTable(a.term.Writer(), []string{
		a.msg.T("field_id"), a.msg.T("field_name"), a.msg.T("field_price"), a.msg.T("field_quantity"),
		a.msg.T("field_department"), a.msg.T("field_warehouse"), a.msg.T("field_last_modified"),
		a.msg.T("field_last_modified_by"),
	}, rows)
	describeResult(a, res.Meta, productFilterLabels(a, s.filter))
}

// askFilters pide los criterios de búsqueda. Si son inválidos se conservan los anteriores.
func (s *productListScreen) askFilters(ctx context.Context, a *App) {
	a.say("filter_title")
	a.say("filter_hint")
	var f dto.ProductFilterRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"field_name", &f.Name},
		{"field_department", &f.Department},
		{"field_warehouse", &f.Warehouse},
		{"field_last_modified_by", &f.LastModifiedBy},
		{"filter_date", &f.LastModifiedDate},
		{"field_price_min", &f.PriceMin},
		{"field_price_max", &f.PriceMax},
	}
	for _, fd := range fields {
		v, ok := a.prompt(fd.label)
		if !ok {
			return
		}
		*fd.dst = v
	}
	if _, err := a.products.List(ctx, f); err != nil {
		a.report("product", "product.filter", err, nil)
		return
	}
	s.filter = f
}

func (s *productListScreen) export(ctx context.Context, a *App) {
	at := a.now()
	data, err := a.reports.ProductReport(ctx, s.items, pdf.ReportMeta{
		Author:  a.sess.UserName,
		At:      at,
		Filters: productFilterLabels(a, s.filter),
	})
	if err != nil {
		a.report("product", "product.report", err, nil)
		return
	}
	path, err := pdf.Save(a.reportDir, "productos", at, data)
	if err != nil {
		a.report("product", "product.report", err, nil)
		return
	}
	a.log.Info().Str("op", "product.report").Str("path", path).Int("rows", len(s.items)).Msg("reporte generado")
	a.sayf("report_saved", map[string]any{"Path": path})
}

func productFilterLabels(a *App, f dto.ProductFilterRequest) []string {
	return filterLabels(a, []labeled{
		{"field_name", f.Name},
		{"field_department", f.Department},
		{"field_warehouse", f.Warehouse},
		{"field_last_modified_by", f.LastModifiedBy},
		{"field_last_modified", f.LastModifiedDate},
		{"field_price_min", f.PriceMin},
		{"field_price_max", f.PriceMax},
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario
// ──────────────────────────────────────────────────────────────────────────────

type productForm struct {
	target EditTarget
	draft  dto.ProductInput
	dirty  bool // draft con cambios aún no guardados
}

func newProductForm(target EditTarget) *productForm {
	return &productForm{target: target}
}

func (f *productForm) Show(ctx context.Context, a *App) Transition {
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

func (f *productForm) showCreate(ctx context.Context, a *App) Transition {
	a.say("product_form_new")
	if !f.collect(ctx, a) {
		return quit()
	}
	a.say("form_actions_new")
	choice, ok := a.prompt("app_option")
	if !ok {
		return quit()
	}
	switch choice {
	case "g":
		out, err := a.products.Create(ctx, a.sess, f.draft)
		if err != nil {
			a.report("product", "product.create", err, map[string]any{"Name": strings.TrimSpace(f.draft.Warehouse)})
			return stay()
		}
		a.log.Info().Str("op", "product.create").Int64("id", out.ID).Msg("producto creado")
		a.say("product_saved")
		f.draft = dto.ProductInput{}
		return stay()
	case "v":
		return pop()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}

func (f *productForm) showEdit(ctx context.Context, a *App, id int64) Transition {
	current, err := a.products.GetByID(ctx, id)
	if err != nil {
		a.report("product", "product.get", err, nil)
		return pop()
	}
	if !f.dirty {
		f.draft = productDraft(current)
	}
	a.sayf("product_form_edit", map[string]any{"ID": id})
	a.renderProductDetail(current)

	writable := a.canWrite(entity.ResourceProduct)
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
		if !f.collect(ctx, a) {
			return quit()
		}
		f.dirty = true
		if _, err := a.products.Update(ctx, a.sess, id, f.draft); err != nil {
			a.report("product", "product.update", err, map[string]any{"Name": strings.TrimSpace(f.draft.Warehouse)})
			return stay()
		}
		f.dirty = false
		a.log.Info().Str("op", "product.update").Int64("id", id).Msg("producto actualizado")
		a.say("product_updated")
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
		if err := a.products.Delete(ctx, a.sess, id); err != nil {
			a.report("product", "product.delete", err, nil)
			return stay()
		}
		a.log.Info().Str("op", "product.delete").Int64("id", id).Msg("producto eliminado")
		a.say("product_deleted")
		return pop()
	case "v":
		return pop()
	default:
		a.say("app_invalid_option")
		return stay()
	}
}

// collect pide cada campo sobre el borrador. false si se agotó la entrada.
func (f *productForm) collect(ctx context.Context, a *App) bool {
	a.say("form_hint")
	fields := []struct {
		label string
		dst   *string
	}{
		{"field_name", &f.draft.Name},
		{"field_price", &f.draft.Price},
		{"field_quantity", &f.draft.Quantity},
		{"field_department", &f.draft.Department},
	}
	for _, fd := range fields {
		v, ok := a.ask(fd.label, *fd.dst)
		if !ok {
			return false
		}
		*fd.dst = v
	}

	names, err := a.warehouses.Names(ctx)
	if err != nil {
		a.report("product", "warehouse.names", err, nil)
		names = nil
	}
	options := make([]string, 0, len(names))
	for i, n := range names {
		options = append(options, strconv.Itoa(i+1)+") "+n)
	}
	a.sayf("product_warehouse_options", map[string]any{"Names": strings.Join(options, "  ")})
	v, ok := a.ask("field_warehouse", f.draft.Warehouse)
	if !ok {
		return false
	}
	f.draft.Warehouse = chooseOption(v, names)
	return true
}

// chooseOption acepta el nombre exacto o el número de la opción listada.
func chooseOption(v string, names []string) string {
	for _, n := range names {
		if n == v {
			return v
		}
	}
	if i, err := strconv.Atoi(v); err == nil && i >= 1 && i <= len(names) {
		return names[i-1]
	}
	return v
}

func productDraft(p *dto.ProductResponse) dto.ProductInput {
	return dto.ProductInput{
		Name:       p.Name,
		Price:      decimalOf(p.Price),
		Quantity:   intOf(p.Quantity),
		Department: textOf(p.Department),
		Warehouse:  p.WarehouseName,
	}
}

func (a *App) renderProductDetail(p *dto.ProductResponse) {
	renderPairs(a.term.Writer(), [][2]string{
		{a.msg.T("field_name"), p.Name},
		{a.msg.T("field_price"), decimalOf(p.Price)},
		{a.msg.T("field_quantity"), intOf(p.Quantity)},
		{a.msg.T("field_department"), textOf(p.Department)},
		{a.msg.T("field_warehouse"), p.WarehouseName},
		{a.msg.T("field_last_modified"), dateOf(p.LastModified)},
		{a.msg.T("field_last_modified_by"), p.LastModifiedBy},
	})
}
