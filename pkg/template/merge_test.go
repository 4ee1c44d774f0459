package template_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/mapping"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

func TestMerge_ChildOverridesExcludesAndAdds(t *testing.T) {
	parent := &tmpl.Template{
		ID: "base",
		Sections: []tmpl.Section{
			{
				ID:           "s1",
				Renderer:     tmpl.RendererFormFill,
				TemplatePath: "layouts/s1.yaml",
				MappingType:  mapping.TypeJSONPath,
				Order:        1,
				Fields: map[string]string{
					"f1": "$.a",
					"f2": "$.b",
				},
			},
			{
				ID:           "s2",
				Renderer:     tmpl.RendererFormFill,
				TemplatePath: "layouts/s2.yaml",
				Order:        2,
			},
		},
	}

	child := &tmpl.Template{
		ID: "child",
		Sections: []tmpl.Section{
			{
				ID: "s1",
				Fields: map[string]string{
					"f1": "$.x",
					"f3": "$.c",
				},
			},
			{ID: "s2", Exclude: true},
			{
				ID:           "s3",
				Renderer:     tmpl.RendererTemplatedView,
				TemplatePath: "views/s3.tpl",
				Order:        3,
			},
		},
	}

	got := tmpl.Merge(parent, child)

	want := &tmpl.Template{
		ID: "child",
		Sections: []tmpl.Section{
			{
				ID:           "s1",
				Renderer:     tmpl.RendererFormFill,
				TemplatePath: "layouts/s1.yaml",
				MappingType:  mapping.TypeJSONPath,
				Order:        1,
				Fields: map[string]string{
					"f1": "$.x",
					"f2": "$.b",
					"f3": "$.c",
				},
			},
			{
				ID:           "s3",
				Renderer:     tmpl.RendererTemplatedView,
				TemplatePath: "views/s3.tpl",
				Order:        3,
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged template mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_ScalarOverrides(t *testing.T) {
	parent := &tmpl.Template{
		ID: "base",
		Sections: []tmpl.Section{{
			ID:           "main",
			Renderer:     tmpl.RendererFormFill,
			TemplatePath: "layouts/main.yaml",
			MappingType:  mapping.TypeDirect,
			Condition:    "customer",
			ViewModel:    "order",
			Order:        5,
		}},
	}

	t.Run("set child scalars win", func(t *testing.T) {
		child := &tmpl.Template{
			ID: "child",
			Sections: []tmpl.Section{{
				ID:           "main",
				Renderer:     tmpl.RendererTemplatedView,
				TemplatePath: "views/main.tpl",
				MappingType:  mapping.TypeJSONata,
				Condition:    "order",
				ViewModel:    "invoice",
				Order:        7,
			}},
		}

		got := tmpl.Merge(parent, child)
		sec := got.Sections[0]
		if sec.Renderer != tmpl.RendererTemplatedView ||
			sec.TemplatePath != "views/main.tpl" ||
			sec.MappingType != mapping.TypeJSONata ||
			sec.Condition != "order" ||
			sec.ViewModel != "invoice" ||
			sec.Order != 7 {
			t.Fatalf("child scalars not applied: %+v", sec)
		}
	})

	t.Run("unset child scalars inherit", func(t *testing.T) {
		child := &tmpl.Template{
			ID:       "child",
			Sections: []tmpl.Section{{ID: "main"}},
		}

		got := tmpl.Merge(parent, child)
		if diff := cmp.Diff(parent.Sections[0], got.Sections[0]); diff != "" {
			t.Fatalf("parent scalars not inherited (-want +got):\n%s", diff)
		}
	})
}

func TestMerge_SortsByOrderWithStableTies(t *testing.T) {
	parent := &tmpl.Template{
		ID: "base",
		Sections: []tmpl.Section{
			{ID: "b", Order: 2},
			{ID: "d", Order: 2},
			{ID: "a", Order: 1},
		},
	}
	child := &tmpl.Template{
		ID: "child",
		Sections: []tmpl.Section{
			{ID: "c", Order: 2},
		},
	}

	got := tmpl.Merge(parent, child)

	var ids []string
	for _, sec := range got.Sections {
		ids = append(ids, sec.ID)
	}
	// Ties on Order keep insertion order: parent sections first, then the
	// child-only addition.
	want := []string{"a", "b", "d", "c"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	parent := &tmpl.Template{
		ID: "base",
		Sections: []tmpl.Section{{
			ID:     "s1",
			Fields: map[string]string{"f1": "$.a"},
		}},
	}
	child := &tmpl.Template{
		ID: "child",
		Sections: []tmpl.Section{{
			ID:     "s1",
			Fields: map[string]string{"f1": "$.x"},
		}},
	}

	tmpl.Merge(parent, child)

	if parent.Sections[0].Fields["f1"] != "$.a" {
		t.Fatal("merge mutated the parent's field map")
	}
	if child.Sections[0].Fields["f1"] != "$.x" {
		t.Fatal("merge mutated the child's field map")
	}
}

func TestMerge_GroupsAndOverflowReplacedWholesale(t *testing.T) {
	parent := &tmpl.Template{
		ID: "base",
		Sections: []tmpl.Section{{
			ID: "items",
			Groups: []tmpl.FieldMappingGroup{
				{MappingType: mapping.TypeDirect, Fields: map[string]string{"a": "a"}},
			},
			Overflow: []tmpl.OverflowConfig{
				{ArrayPath: "items", MaxItemsInMain: 5, ItemsPerPage: 10, AddendumTemplatePath: "layouts/add.yaml"},
			},
		}},
	}
	child := &tmpl.Template{
		ID: "child",
		Sections: []tmpl.Section{{
			ID: "items",
			Overflow: []tmpl.OverflowConfig{
				{ArrayPath: "items", MaxItemsInMain: 8, ItemsPerPage: 12, AddendumTemplatePath: "layouts/add2.yaml"},
			},
		}},
	}

	got := tmpl.Merge(parent, child)
	sec := got.Sections[0]

	if diff := cmp.Diff(parent.Sections[0].Groups, sec.Groups); diff != "" {
		t.Fatalf("groups should inherit when child declares none (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(child.Sections[0].Overflow, sec.Overflow); diff != "" {
		t.Fatalf("overflow should be replaced by the child (-want +got):\n%s", diff)
	}
}
