package check

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/you-not-fish/sjavac/internal/diag"
	"github.com/you-not-fish/sjavac/internal/syntax"
	"github.com/you-not-fish/sjavac/internal/types"
)

// Checker holds the state of one verification run.
// A Checker is used for a single source and then dropped.
type Checker struct {
	conf     *Config
	log      *zap.Logger
	runID    string
	filename string

	// Symbol tables
	tree    *types.Tree
	methods *types.MethodTable

	// Current scanning context
	scope      types.ScopeID // current scope
	pos        syntax.Pos    // current line (for error reporting)
	lastReturn bool          // the previous line was "return;"

	// Deferred work, drained after the scan
	assigns []*pendingAssign
	calls   []*pendingCall
}

func newChecker(filename string, conf *Config) *Checker {
	runID := uuid.NewString()
	log := conf.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{
		conf:     conf,
		log:      log.With(zap.String("run_id", runID), zap.String("file", filename)),
		runID:    runID,
		filename: filename,
		tree:     types.NewTree(),
		methods:  types.NewMethodTable(),
		scope:    types.GlobalID,
	}
}

// run scans every line of src, then resolves the deferred work.
func (c *Checker) run(src *syntax.Source) error {
	for src.Next() {
		c.pos = src.Pos()
		s, err := syntax.Parse(c.pos, src.Text())
		if err != nil {
			return err
		}
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		var fault *diag.Error
		if errors.As(err, &fault) {
			return fault
		}
		return fmt.Errorf("check: read %s: %w", c.filename, err)
	}

	// Every opened scope must be closed; the fault belongs to the last line.
	if c.scope != types.GlobalID {
		return c.error(diag.InvalidScope)
	}

	c.log.Debug("scan complete",
		zap.Int("lines", src.Lines()),
		zap.Int("scopes", c.tree.Len()),
		zap.Int("methods", c.methods.Len()))

	return c.resolveDeferred()
}

// stmt dispatches a statement to its handler.
func (c *Checker) stmt(s syntax.Stmt) error {
	prevReturn := c.lastReturn
	c.lastReturn = s.Kind() == syntax.Return

	switch s := s.(type) {
	case *syntax.VarDecl:
		return c.varDecl(s)
	case *syntax.AssignStmt:
		return c.assignStmt(s)
	case *syntax.MethodDecl:
		return c.methodDecl(s)
	case *syntax.CallStmt:
		return c.callStmt(s)
	case *syntax.CondStmt:
		return c.condStmt(s)
	case *syntax.CloseStmt:
		return c.closeScope(prevReturn)
	case *syntax.EmptyStmt, *syntax.CommentStmt, *syntax.ReturnStmt:
		return nil
	default:
		panic(fmt.Sprintf("check: unexpected statement %T", s))
	}
}

// openScope creates a new scope as a child of the current scope and
// makes it current.
func (c *Checker) openScope(kind types.ScopeKind, comment string) *types.Scope {
	s := c.tree.Open(c.scope, kind, c.pos, comment)
	c.log.Debug("open scope",
		zap.Stringer("kind", kind),
		zap.Int32("scope", int32(s.ID())),
		zap.Int32("parent", int32(c.scope)),
		zap.Uint32("line", c.pos.Line()))
	c.scope = s.ID()
	return s
}

// currentScope returns the current scope.
func (c *Checker) currentScope() *types.Scope {
	return c.tree.Scope(c.scope)
}

// lookup looks up a name from the current scope outward.
func (c *Checker) lookup(name string) (*types.Var, types.ScopeID) {
	return c.tree.LookupParent(c.scope, name)
}

// declare inserts v into the current scope.
// Reports DuplicateVariable if the name is already declared there.
func (c *Checker) declare(v *types.Var) error {
	if existing := c.currentScope().Insert(v); existing != nil {
		return c.error(diag.DuplicateVariable)
	}
	return nil
}
