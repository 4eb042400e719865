package stub

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"breeze/internal/ast"
	"breeze/internal/scope"
	"breeze/internal/source"
	"breeze/internal/types"
)

// Query is a resolution request loaded from a query file: one construct, the
// scope it appears in, and an optional explicit receiver.
type Query struct {
	Node           *ast.Expr
	Scope          *scope.Frame
	Receiver       types.ClassID
	StaticReceiver bool

	// Source is the surrounding source text, when the query carries one; the
	// node's span covers all of it.
	Source *source.Buffer
}

// NodeStub describes one construct in a query file. Operand nests another
// construct for the wrapper kinds.
type NodeStub struct {
	Kind         string    `toml:"kind"`
	Name         string    `toml:"name"`
	Type         string    `toml:"type"`
	Lit          string    `toml:"lit"`
	Ctor         string    `toml:"ctor"`
	Owner        string    `toml:"owner"`
	ArgsFlat     bool      `toml:"args_flat"`
	Binding      string    `toml:"binding"`
	BindingOwner string    `toml:"binding_owner"`
	BindingType  string    `toml:"binding_type"`
	Operand      *NodeStub `toml:"operand"`
}

// ScopeStub describes the lexical scope of a query.
type ScopeStub struct {
	MethodCall bool                `toml:"method_call"`
	Args       []string            `toml:"args"`
	HasArgs    bool                `toml:"-"`
	ArgCount   int                 `toml:"arg_count"`
	Static     bool                `toml:"static"`
	This       string              `toml:"this"`
	Delegate   string              `toml:"delegate"`
	ScriptBody bool                `toml:"script_body"`
	Class      string              `toml:"enclosing_class"`
	Method     *MethodContextStub  `toml:"enclosing_method"`
	Vars       map[string]InfoStub `toml:"vars"`
	Assign     bool                `toml:"assign_target"`
}

// MethodContextStub describes the enclosing method of a scope.
type MethodContextStub struct {
	Owner       string `toml:"owner"`
	Constructor bool   `toml:"constructor"`
}

// InfoStub describes one tracked variable in a scope.
type InfoStub struct {
	Type      string `toml:"type"`
	Declaring string `toml:"declaring"`
}

// ReceiverStub describes the explicit object expression of a query.
type ReceiverStub struct {
	Type   string `toml:"type"`
	Static bool   `toml:"static"`
}

type queryFile struct {
	Source   string        `toml:"source"`
	Node     *NodeStub     `toml:"node"`
	Receiver *ReceiverStub `toml:"receiver"`
	Scope    ScopeStub     `toml:"scope"`
}

// LoadQuery reads a query file and binds it against the given universe.
func LoadQuery(path string, u *types.Universe) (*Query, error) {
	var cfg queryFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Node == nil {
		return nil, fmt.Errorf("%s: missing [node]", path)
	}
	cfg.Scope.HasArgs = meta.IsDefined("scope", "args")
	q, err := bindQuery(u, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

func bindQuery(u *types.Universe, cfg *queryFile) (*Query, error) {
	r := &resolver{universe: u, ids: map[string]types.ClassID{}}

	var buf *source.Buffer
	if cfg.Source != "" {
		buf = source.NewBuffer([]byte(cfg.Source))
	}

	node, err := r.buildNode(cfg.Node, buf)
	if err != nil {
		return nil, err
	}

	frame, err := r.buildScope(&cfg.Scope, node)
	if err != nil {
		return nil, err
	}

	q := &Query{Node: node, Scope: frame, Source: buf}
	if cfg.Receiver != nil {
		recv, err := r.lookup(cfg.Receiver.Type)
		if err != nil {
			return nil, fmt.Errorf("receiver: %w", err)
		}
		q.Receiver = recv
		q.StaticReceiver = cfg.Receiver.Static
	}
	return q, nil
}

func (r *resolver) buildNode(ns *NodeStub, buf *source.Buffer) (*ast.Expr, error) {
	kind, err := exprKind(ns.Kind)
	if err != nil {
		return nil, err
	}
	node := &ast.Expr{Kind: kind, Name: ns.Name}
	if buf != nil {
		node.Span = source.Span{Start: 0, End: buf.Len()}
	}

	if ns.Type != "" {
		typ, err := r.lookup(ns.Type)
		if err != nil {
			return nil, fmt.Errorf("node type: %w", err)
		}
		node.Type = typ
	}

	switch ns.Lit {
	case "":
	case "null":
		node.Lit = ast.LitNull
	case "true":
		node.Lit = ast.LitTrue
	case "false":
		node.Lit = ast.LitFalse
	case "empty_string":
		node.Lit = ast.LitEmptyString
	default:
		return nil, fmt.Errorf("unknown literal kind %q", ns.Lit)
	}

	switch ns.Ctor {
	case "", "normal":
	case "this":
		node.CtorKind = ast.CtorThisCall
	case "super":
		node.CtorKind = ast.CtorSuperCall
	default:
		return nil, fmt.Errorf("unknown constructor-call kind %q", ns.Ctor)
	}

	if ns.Owner != "" {
		owner, err := r.lookup(ns.Owner)
		if err != nil {
			return nil, fmt.Errorf("node owner: %w", err)
		}
		node.Owner = owner
	}
	node.ArgsFlat = ns.ArgsFlat

	if ns.Binding != "" {
		if err := r.bind(node, ns); err != nil {
			return nil, err
		}
	}

	if ns.Operand != nil {
		operand, err := r.buildNode(ns.Operand, nil)
		if err != nil {
			return nil, fmt.Errorf("operand: %w", err)
		}
		node.Operand = operand
	}
	return node, nil
}

func (r *resolver) bind(node *ast.Expr, ns *NodeStub) error {
	if ns.BindingType != "" {
		typ, err := r.lookup(ns.BindingType)
		if err != nil {
			return fmt.Errorf("binding type: %w", err)
		}
		node.Binding.Type = typ
	}
	switch ns.Binding {
	case "local":
		node.Binding.Kind = ast.BindLocal
	case "dynamic":
		node.Binding.Kind = ast.BindDynamic
	case "field", "property":
		owner, err := r.lookup(ns.BindingOwner)
		if err != nil {
			return fmt.Errorf("binding owner: %w", err)
		}
		if ns.Binding == "field" {
			f := r.universe.FieldNamed(owner, node.Name)
			if f == nil {
				return fmt.Errorf("binding: no field %q on %q", node.Name, r.universe.Name(owner))
			}
			node.Binding.Kind = ast.BindField
			node.Binding.Field = f
		} else {
			p := r.universe.PropertyNamed(owner, node.Name)
			if p == nil {
				return fmt.Errorf("binding: no property %q on %q", node.Name, r.universe.Name(owner))
			}
			node.Binding.Kind = ast.BindProperty
			node.Binding.Property = p
		}
	default:
		return fmt.Errorf("unknown binding kind %q", ns.Binding)
	}
	return nil
}

func (r *resolver) buildScope(ss *ScopeStub, node *ast.Expr) (*scope.Frame, error) {
	frame := &scope.Frame{
		Vars:       map[string]scope.Info{},
		MethodCall: ss.MethodCall,
		ArgCount:   ss.ArgCount,
		Static:     ss.Static,
		ScriptBody: ss.ScriptBody,
	}
	if ss.HasArgs {
		args, err := r.lookupAll(ss.Args)
		if err != nil {
			return nil, fmt.Errorf("scope args: %w", err)
		}
		frame.ArgTypes = args
	}
	if ss.This != "" {
		id, err := r.lookup(ss.This)
		if err != nil {
			return nil, fmt.Errorf("scope this: %w", err)
		}
		frame.ThisType = id
	}
	if ss.Delegate != "" {
		id, err := r.lookup(ss.Delegate)
		if err != nil {
			return nil, fmt.Errorf("scope delegate: %w", err)
		}
		frame.Delegated = id
	}
	if ss.Class != "" {
		id, err := r.lookup(ss.Class)
		if err != nil {
			return nil, fmt.Errorf("scope enclosing class: %w", err)
		}
		frame.ClassDecl = id
	}
	if ss.Method != nil {
		owner, err := r.lookup(ss.Method.Owner)
		if err != nil {
			return nil, fmt.Errorf("scope enclosing method: %w", err)
		}
		frame.HasMethod = true
		frame.Enclosing = scope.MethodContext{Owner: owner, IsConstructor: ss.Method.Constructor}
	}
	for name, is := range ss.Vars {
		typ, err := r.lookup(is.Type)
		if err != nil {
			return nil, fmt.Errorf("scope var %q: %w", name, err)
		}
		declaring, err := r.lookup(is.Declaring)
		if err != nil {
			return nil, fmt.Errorf("scope var %q: %w", name, err)
		}
		frame.Vars[name] = scope.Info{Type: typ, DeclaringType: declaring}
	}
	if ss.Assign {
		frame.AssignTarget = node
	}
	return frame, nil
}

func exprKind(kind string) (ast.ExprKind, error) {
	switch kind {
	case "variable":
		return ast.ExprVariable, nil
	case "", "constant":
		return ast.ExprConstant, nil
	case "boolean":
		return ast.ExprBoolean, nil
	case "not":
		return ast.ExprNot, nil
	case "interp":
		return ast.ExprInterp, nil
	case "bitneg":
		return ast.ExprBitwiseNegate, nil
	case "classlit":
		return ast.ExprClassLiteral, nil
	case "ctorcall":
		return ast.ExprCtorCall, nil
	case "staticcall":
		return ast.ExprStaticCall, nil
	case "tuple":
		return ast.ExprTuple, nil
	case "other":
		return ast.ExprOther, nil
	default:
		return ast.ExprOther, fmt.Errorf("unknown construct kind %q", kind)
	}
}
