package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/export"
	"github.com/katalvlaran/sirg/stats"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("statistic", func(fl validator.FieldLevel) bool {
		_, err := stats.ByName(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate reports every problem in cfg at once: field ranges from the
// struct tags, then the rules that span several fields.
func Validate(cfg *RunConfig) error {
	var errs []string
	add := func(format string, args ...any) { errs = append(errs, fmt.Sprintf(format, args...)) }

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range verrs {
			add("%s: %s", fieldPath(fe), describe(fe))
		}
	}

	s := cfg.Seed
	switch {
	case s.Kind == "file" && s.File == "":
		add("seed.file is required for kind file")
	case s.Kind == "barabasi-albert" && (s.M < 1 || s.M >= s.Nodes):
		add("seed.m must be in [1, nodes), got %d", s.M)
	case s.Kind != "file" && s.Kind != "petersen" && s.Nodes < 2:
		add("seed.nodes must be at least 2, got %d", s.Nodes)
	}

	g := cfg.Growth
	if mode, err := catalog.ParseMode(g.CatalogMode); err == nil {
		limit := catalog.MaxExhaustiveSize
		if mode == catalog.EdgeRemovalChain {
			limit = catalog.MaxChainSize
		}
		if g.Tau < catalog.MinSize || g.Tau > limit {
			add("growth.tau must be in [%d, %d] for %s, got %d", catalog.MinSize, limit, mode, g.Tau)
		}
		if g.Dedup && g.Tau > catalog.MaxDedupSize {
			add("growth.tau above %d requires dedup: false", catalog.MaxDedupSize)
		}
	}
	if cfg.Output.Path != "" {
		if _, err := export.FormatFromPath(cfg.Output.Path); err != nil {
			add("output.path: unsupported extension in %q", cfg.Output.Path)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}

// fieldPath turns "RunConfig.growth.beta" into "growth.beta".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}

	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%v is not one of [%s]", fe.Value(), fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "statistic":
		return fmt.Sprintf("unknown statistic %q (have %s)", fe.Value(), strings.Join(stats.Names(), ", "))
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
