package xml

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestNewRelationshipsAssignsIDs(t *testing.T) {
	rels := NewRelationships(
		Relationship{Type: RelTypeStyles, Target: "styles.xml"},
		Relationship{ID: "rIdCustom", Type: RelTypeSettings, Target: "settings.xml"},
		Relationship{Type: RelTypeSettings, Target: "other.xml"},
	)

	want := []string{"rId1", "rIdCustom", "rId3"}
	for i, rel := range rels.Relationship {
		if rel.ID != want[i] {
			t.Errorf("relationship %d ID = %q, want %q", i, rel.ID, want[i])
		}
	}
	if rels.Namespace != NamespaceRelationships {
		t.Errorf("Namespace = %q", rels.Namespace)
	}
}

func TestPackagePartsMarshal(t *testing.T) {
	tests := []struct {
		name string
		part any
		want []string
	}{
		{
			name: "relationships",
			part: NewRelationships(Relationship{Type: RelTypeOfficeDocument, Target: "word/document.xml"}),
			want: []string{
				`<Relationships xmlns="` + NamespaceRelationships + `">`,
				`<Relationship Id="rId1" Type="` + RelTypeOfficeDocument + `" Target="word/document.xml"></Relationship>`,
			},
		},
		{
			name: "content types",
			part: &ContentTypes{
				Namespace: NamespaceContentTypes,
				Defaults:  []ContentTypeDefault{{Extension: "xml", ContentType: "application/xml"}},
				Overrides: []ContentTypeOverride{{PartName: "/word/document.xml", ContentType: "main"}},
			},
			want: []string{
				`<Types xmlns="` + NamespaceContentTypes + `">`,
				`<Default Extension="xml" ContentType="application/xml"></Default>`,
				`<Override PartName="/word/document.xml" ContentType="main"></Override>`,
			},
		},
		{
			name: "settings",
			part: Settings{DefaultTabStop: 720},
			want: []string{
				`<w:settings xmlns:w="` + NamespaceW + `">`,
				`<w:defaultTabStop w:val="720"></w:defaultTabStop>`,
			},
		},
		{
			name: "core properties",
			part: CoreProperties{Title: "A & B", Creator: "go-mdocx"},
			want: []string{
				`<cp:coreProperties xmlns:cp=`,
				`<dc:title>A &amp; B</dc:title>`,
				`<dc:creator>go-mdocx</dc:creator>`,
			},
		},
		{
			name: "app properties",
			part: &AppProperties{Namespace: NamespaceExtendedProperties, Application: "go-mdocx"},
			want: []string{
				`<Properties xmlns="` + NamespaceExtendedProperties + `">`,
				`<Application>go-mdocx</Application>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalPart(tt.part)
			if err != nil {
				t.Fatalf("MarshalPart() error = %v", err)
			}
			result := string(data)
			if !strings.HasPrefix(result, xml.Header) {
				t.Errorf("missing XML declaration: %s", result)
			}
			for _, want := range tt.want {
				if !strings.Contains(result, want) {
					t.Errorf("Expected %q in %s", want, result)
				}
			}
		})
	}
}

func TestCorePropertiesOmitsEmptyValues(t *testing.T) {
	data, err := MarshalPart(CoreProperties{})
	if err != nil {
		t.Fatalf("MarshalPart() error = %v", err)
	}
	if strings.Contains(string(data), "dc:title") || strings.Contains(string(data), "dc:creator") {
		t.Errorf("empty properties should be omitted: %s", data)
	}
}
