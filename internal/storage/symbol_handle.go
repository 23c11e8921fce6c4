package storage

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/symbol"
)

// isValidSymbolName accepts names of the form 'word' or 'word_X' with a
// single alphanumeric subscript, e.g. 'phi', 'c_0'.
func isValidSymbolName(name string) bool {
	parts := strings.Split(name, "_")
	if parts[0] == "" || !isAlpha(parts[0]) {
		return false
	}
	switch len(parts) {
	case 1:
		return true
	case 2:
		return len(parts[1]) == 1 && isAlnum(parts[1])
	default:
		return false
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (s *storage) handleAddConstant(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		http.Error(w, "unknown user", http.StatusUnauthorized)
		return
	}

	payload := struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.Name = strings.ToLower(payload.Name)
	if !isValidSymbolName(payload.Name) {
		http.Error(w, fmt.Sprintf("invalid constant name %q", payload.Name), http.StatusBadRequest)
		return
	}

	// the value is itself an expression, evaluated with the live registry
	s.mu.RLock()
	postfix, err := s.eval.Parse(strings.ToLower(payload.Value))
	var value float64
	if err == nil {
		value, err = s.eval.EvaluatePostfix(postfix)
	}
	s.mu.RUnlock()
	if err != nil {
		writeEvalError(w, err)
		return
	}

	c, err := symbol.NewConstant(payload.Name, value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.registerConstant(c, value); err != nil {
		writeEvalError(w, err)
		return
	}
	s.updateSymbolMetrics()
	w.WriteHeader(http.StatusCreated)
}

// registerConstant persists the constant before registering it, so a failed
// insert leaves no symbol alive that would vanish on restart. The stored row
// is rolled back if registration fails anyway.
func (s *storage) registerConstant(c symbol.Constant, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eval.Has(c.Token()) {
		return &mathparse.OperatorError{Token: c.Token(), Err: mathparse.ErrDuplicateSymbol}
	}
	if err := storeUserConstant(s.db, c.Token(), value); err != nil {
		return err
	}
	if err := s.eval.AddConstant(c); err != nil {
		deleteUserConstant(s.db, c.Token())
		return err
	}
	return nil
}

func (s *storage) handleAddFunction(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		http.Error(w, "unknown user", http.StatusUnauthorized)
		return
	}

	payload := struct {
		Name       string `json:"name"`
		NVar       int    `json:"n_var"`
		Expression string `json:"expression"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.Name = strings.ToLower(payload.Name)
	payload.Expression = strings.ToLower(payload.Expression)
	if !isValidSymbolName(payload.Name) {
		http.Error(w, fmt.Sprintf("invalid function name %q", payload.Name), http.StatusBadRequest)
		return
	}

	if err := s.registerFunction(payload.Name, payload.NVar, payload.Expression); err != nil {
		writeEvalError(w, err)
		return
	}
	s.updateSymbolMetrics()
	w.WriteHeader(http.StatusCreated)
}

// registerFunction persists the definition before building it; see
// registerConstant.
func (s *storage) registerFunction(name string, nVar int, expression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eval.Has(name) {
		return &mathparse.OperatorError{Token: name, Err: mathparse.ErrDuplicateSymbol}
	}
	if err := storeUserFunction(s.db, name, nVar, expression); err != nil {
		return err
	}
	if _, err := s.eval.DefineFunction(name, nVar, expression); err != nil {
		deleteUserFunction(s.db, name)
		return err
	}
	return nil
}

func (s *storage) handleSetImplicit(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorize(r); err != nil {
		http.Error(w, "unknown user", http.StatusUnauthorized)
		return
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.eval.SetImplicitOperation(payload.Token)
	s.mu.Unlock()
	if err != nil {
		writeEvalError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *storage) handleGetSymbols(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	operators := s.eval.Operators()
	functions := s.eval.Functions()
	constants := s.eval.Constants()
	implicit, _ := s.eval.ImplicitOperation()
	s.mu.RUnlock()

	list := struct {
		Operators []string           `json:"operators"`
		Functions map[string]int     `json:"functions"`
		Constants map[string]float64 `json:"constants"`
		Implicit  string             `json:"implicit,omitempty"`
	}{
		Operators: make([]string, 0, len(operators)),
		Functions: make(map[string]int, len(functions)),
		Constants: make(map[string]float64, len(constants)),
		Implicit:  implicit,
	}
	for token := range operators {
		list.Operators = append(list.Operators, token)
	}
	sort.Strings(list.Operators)
	for token, fn := range functions {
		list.Functions[token] = fn.NVar()
	}
	for token, c := range constants {
		list.Constants[token] = c.Value()
	}

	data, err := json.Marshal(list)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
