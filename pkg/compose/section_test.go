package compose_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/compose"
	"github.com/goliatone/go-docgen/pkg/testsupport"
)

func TestSection_MappingGroupsApplyInOrder(t *testing.T) {
	fixture := fstest.MapFS{
		"doc.yaml": {Data: []byte(`
template: doc
sections:
  - id: main
    renderer: form-fill
    template_path: layouts/main.yaml
    order: 1
    mapping_groups:
      - mapping_type: direct
        fields:
          name: customer.name
          shared: customer.name
      - mapping_type: jsonpath
        fields:
          total: "$.order.total"
          shared: "$.order.total"
`)},
		"layouts/main.yaml": {Data: []byte(`
fields:
  - name: name
    x: 10
    y: 10
    width: 60
    height: 5
  - name: total
    x: 10
    y: 20
    width: 60
    height: 5
  - name: shared
    x: 10
    y: 30
    width: 60
    height: 5
`)},
	}
	composer := newTestComposer(t, fixture)

	canvas := &stubCanvas{}
	_, err := composer.Generate(testsupport.Context(), compose.Request{
		TemplateID: "doc",
		Data: map[string]any{
			"customer": map[string]any{"name": "Acme"},
			"order":    map[string]any{"total": 99.5},
		},
		Canvas: canvas,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Later groups overwrite overlapping field names: "shared" takes the
	// jsonpath group's value.
	want := []string{"Acme", "99.5", "99.5"}
	if diff := cmp.Diff(want, canvas.pageBoxTexts(1)); diff != "" {
		t.Fatalf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestSection_ViewModelNarrowsTemplatedView(t *testing.T) {
	fixture := fstest.MapFS{
		"doc.yaml": {Data: []byte(`
template: doc
sections:
  - id: body
    renderer: templated-view
    template_path: views/body.tpl
    view_model: report.summary
    order: 1
`)},
		"views/body.tpl": {Data: []byte("{{ headline }} ({{ count }})")},
	}
	composer := newTestComposer(t, fixture)

	canvas := &stubCanvas{}
	_, err := composer.Generate(testsupport.Context(), compose.Request{
		TemplateID: "doc",
		Data: map[string]any{
			"report": map[string]any{
				"summary": map[string]any{"headline": "Q3 volume up", "count": 17},
			},
		},
		Canvas: canvas,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(canvas.texts) != 1 || canvas.texts[0].text != "Q3 volume up (17)" {
		t.Fatalf("texts = %+v", canvas.texts)
	}
}
