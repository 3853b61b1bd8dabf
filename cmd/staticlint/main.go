// Package staticlint - набор статических анализаторов для кода экспортера.
//
// Включает:
//   - стандартные анализаторы из golang.org/x/tools/go/analysis/passes
//   - все анализаторы класса SA из staticcheck.io
//   - выбранные анализаторы классов S, ST и QF
//   - noosexit, запрещающий прямой вызов os.Exit в main
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
//
// noosexit нужен потому, что main экспортера завершает процесс через
// logrus.Fatal после записи диагностики, а не через os.Exit.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/chestorix/climacell-exporter/cmd/staticlint/noosexit"
)

// extraChecks - анализаторы не из класса SA.
var extraChecks = map[string]bool{
	"S1002":  true, // сравнение с true
	"S1021":  true, // объединение объявления и присваивания
	"ST1005": true, // формат строк ошибок
	"ST1019": true, // повторный импорт пакета
	"QF1001": true, // закон де Моргана
}

func selectAnalyzers(sets ...[]*lint.Analyzer) []*analysis.Analyzer {
	var result []*analysis.Analyzer
	for _, set := range sets {
		for _, a := range set {
			name := a.Analyzer.Name
			if strings.HasPrefix(name, "SA") || extraChecks[name] {
				result = append(result, a.Analyzer)
			}
		}
	}
	return result
}

func main() {
	analyzers := []*analysis.Analyzer{
		atomic.Analyzer,
		bools.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}

	analyzers = append(analyzers, selectAnalyzers(
		staticcheck.Analyzers,
		simple.Analyzers,
		stylecheck.Analyzers,
		quickfix.Analyzers,
	)...)

	analyzers = append(analyzers, noosexit.Analyzer)

	multichecker.Main(analyzers...)
}
