package storage

import (
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calcyard/mathcalc/internal/config"
	queue "github.com/calcyard/mathcalc/internal/datastructs"
	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/metrics"
)

type storage struct {
	router *mux.Router
	db     *sql.DB
	eval   *mathparse.Evaluator
	jwtKey []byte

	exprQueue *queue.Queue[pendingExpr]

	// guards eval: handlers mutate the registry, the worker reads it
	mu sync.RWMutex
}

type pendingExpr struct {
	id      int64
	postfix []string
}

func newStorage(db *sql.DB, cfg *config.Config) *storage {
	s := &storage{
		db:        db,
		eval:      mathparse.Default(),
		jwtKey:    []byte(cfg.JWTSecret),
		exprQueue: queue.NewQueue[pendingExpr](cfg.QueueSize),
	}

	if err := loadUserSymbols(db, s.eval); err != nil {
		log.Printf("load saved symbols: %v", err)
	}
	s.updateSymbolMetrics()

	go s.evalExpressions()

	r := mux.NewRouter()
	// auth handle
	r.HandleFunc("/api/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	// expr handle
	r.HandleFunc("/api/expr", s.handleAddExpression).Methods("POST")
	r.HandleFunc("/api/result", s.handleGetResult).Methods("GET")
	// symbol handle
	r.HandleFunc("/api/symbols", s.handleGetSymbols).Methods("GET")
	r.HandleFunc("/api/constant", s.handleAddConstant).Methods("POST")
	r.HandleFunc("/api/function", s.handleAddFunction).Methods("POST")
	r.HandleFunc("/api/implicit", s.handleSetImplicit).Methods("POST")

	r.Handle("/metrics", promhttp.Handler())

	s.router = r

	return s
}

func (s *storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func GetServer(addr string, port int, db *sql.DB, cfg *config.Config) *http.Server {
	var _addr string
	if strings.Contains(addr, "localhost") || strings.Contains(addr, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", port)
	} else {
		_addr = fmt.Sprintf("%s:%d", addr, port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newStorage(db, cfg),
	}
}

func (s *storage) updateSymbolMetrics() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	metrics.UpdateSymbolCounts(len(s.eval.Operators()), len(s.eval.Functions()), len(s.eval.Constants()))
}

type state string
type exprHash int

func getHash(line string) exprHash {
	h := sha1.New()
	h.Write([]byte(line))
	return exprHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

const (
	_           state = ""
	has_error   state = "error"
	in_progress state = "in progress"
	ok          state = "ok"
)

type expressionState struct {
	State  state  `json:"state"`
	Result string `json:"result"`
}
