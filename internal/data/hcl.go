package data

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	apperrors "github.com/vango-dev/selectdemo/internal/errors"
)

// hclDataFile is the top-level structure of a sample data file:
//
//	department "Product" {}
//	team "Flow" {}
type hclDataFile struct {
	Departments []hclNamed `hcl:"department,block"`
	Teams       []hclNamed `hcl:"team,block"`
}

type hclNamed struct {
	Name string `hcl:"name,label"`
}

// LoadFile parses an HCL sample data file. Blocks keep their file order.
func LoadFile(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeDataRead).Wrap(err)
	}
	return Parse(src, path)
}

// Parse decodes HCL sample data. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(apperrors.CodeDataParse, src, diags)
	}

	var parsed hclDataFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, diagError(apperrors.CodeDataParse, src, diags)
	}

	set := &Set{}
	seen := make(map[string]bool)
	for _, d := range parsed.Departments {
		if err := checkName("department", d.Name, seen); err != nil {
			return nil, err
		}
		set.DepartmentList = append(set.DepartmentList, Department{Name: d.Name})
	}
	seen = make(map[string]bool)
	for _, t := range parsed.Teams {
		if err := checkName("team", t.Name, seen); err != nil {
			return nil, err
		}
		set.TeamList = append(set.TeamList, Team{Name: t.Name})
	}
	return set, nil
}

func checkName(kind, name string, seen map[string]bool) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.New(apperrors.CodeDataInvalid).
			WithDetail("A " + kind + " block has an empty name.")
	}
	if seen[name] {
		return apperrors.New(apperrors.CodeDataInvalid).
			WithDetail("Duplicate " + kind + " " + `"` + name + `".`)
	}
	seen[name] = true
	return nil
}

// diagError converts HCL diagnostics into an AppError located at the
// first error.
func diagError(code string, src []byte, diags hcl.Diagnostics) error {
	err := apperrors.New(code).Wrap(diags)
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Subject != nil {
			err.WithSource(d.Subject.Filename, src, d.Subject.Start.Line, d.Subject.Start.Column)
		}
		if d.Detail != "" {
			err.WithSuggestion(d.Detail)
		}
		break
	}
	return err
}
