package storage

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	queue "github.com/calcyard/mathcalc/internal/datastructs"
	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/metrics"
)

func (s *storage) handleAddExpression(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	userId, err := s.authorize(r)
	if err != nil {
		http.Error(w, "unknown user", http.StatusUnauthorized)
		return
	}

	_expr := struct {
		Value string `json:"expr"`
	}{}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&_expr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	postfix, err := s.eval.Parse(strings.ToLower(_expr.Value))
	s.mu.RUnlock()
	if err != nil {
		writeEvalError(w, err)
		return
	}

	hash := getHash(strings.Join(postfix, " "))
	if id, err := checkExpressionExists(s.db, hash, userId); err == nil {
		w.Write([]byte(strconv.FormatInt(id, 10)))
		return
	}

	id, err := storeExpressionState(s.db, in_progress, "", userId, hash, postfix)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.exprQueue.Enqueue(pendingExpr{id: id, postfix: postfix}); err != nil {
		updateExpressionState(s.db, has_error, queue.ErrFull.Error(), id)
		http.Error(w, queue.ErrFull.Error(), http.StatusServiceUnavailable)
		return
	}
	metrics.QueueDepth.Set(float64(s.exprQueue.Len()))
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *storage) handleGetResult(w http.ResponseWriter, r *http.Request) {
	strId := r.URL.Query().Get("id")
	id, err := strconv.Atoi(strId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := getExpressionState(s.db, id)
	if err != nil {
		http.Error(w, "no expr with id "+strId, http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// writeEvalError maps the parser's and evaluator's user-input failures to
// 400 responses; anything else is an internal inconsistency.
func writeEvalError(w http.ResponseWriter, err error) {
	var opErr *mathparse.OperatorError
	var odErr *mathparse.OperandError
	if errors.As(err, &opErr) || errors.As(err, &odErr) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
