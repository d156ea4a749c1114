package ast

import "reflect"

// Visitor is implemented by callers of Walk. Visit is called with each
// node before its children are visited; if it returns a non-nil
// Visitor, Walk uses that (possibly different) Visitor for the
// children, then calls Visit(nil) on the returned Visitor once the
// children are done. Returning nil stops the descent into that node's
// children entirely.
type Visitor interface {
	Visit(n Node) Visitor
}

// isNilNode reports whether n holds a typed nil pointer (e.g. a nil
// *IfStmt stored in a Stmt field that was never populated). A plain
// `n == nil` check only catches the untyped nil, not this case, and
// missing it would send a strictly-decreasing interface holding a nil
// pointer into Visit as if it were a live node.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// walk1 visits a single child, skipping nil.
func walk1(v Visitor, n Node) {
	if isNilNode(n) {
		return
	}
	if v2 := v.Visit(n); v2 != nil {
		Walk(v2, n)
		v2.Visit(nil)
	}
}

// Walk traverses an AST in depth-first order, calling v.Visit for every
// node reachable from node; node itself is not passed to v.Visit, so a
// caller that needs it handles it before calling Walk. It is the single traversal every
// other tree operation (Build, a printer, a resolver) is built on.
func Walk(v Visitor, node Node) {
	if isNilNode(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, s := range n.Stmts {
			walk1(v, s)
		}

	// Expressions
	case *BadExpr, *Ident, *Literal, *MagicConstExpr:
		// leaves

	case *Variable:
		walk1(v, n.Name)
	case *ArrayExpr:
		for _, item := range n.Items {
			walk1(v, item)
		}
	case *ArrayItem:
		walk1(v, n.Key)
		walk1(v, n.Value)
	case *BinaryExpr:
		walk1(v, n.Left)
		walk1(v, n.Right)
	case *UnaryExpr:
		walk1(v, n.X)
	case *PostfixExpr:
		walk1(v, n.X)
	case *TernaryExpr:
		walk1(v, n.Cond)
		walk1(v, n.Then)
		walk1(v, n.Else)
	case *CoalesceExpr:
		walk1(v, n.Left)
		walk1(v, n.Right)
	case *InstanceofExpr:
		walk1(v, n.Expr)
		walk1(v, n.Class)
	case *CastExpr:
		walk1(v, n.X)
	case *CloneExpr:
		walk1(v, n.Expr)
	case *NewExpr:
		walk1(v, n.Class)
		walk1(v, n.Args)
	case *CallExpr:
		walk1(v, n.Func)
		walk1(v, n.Args)
	case *ArgumentList:
		for _, a := range n.Args {
			walk1(v, a)
		}
	case *Argument:
		walk1(v, n.Name)
		walk1(v, n.Value)
	case *MethodCallExpr:
		walk1(v, n.Object)
		walk1(v, n.Method)
		walk1(v, n.Args)
	case *StaticCallExpr:
		walk1(v, n.Class)
		walk1(v, n.Method)
		walk1(v, n.Args)
	case *PropertyFetchExpr:
		walk1(v, n.Object)
		walk1(v, n.Property)
	case *StaticPropertyFetchExpr:
		walk1(v, n.Class)
		walk1(v, n.Property)
	case *ClassConstFetchExpr:
		walk1(v, n.Class)
		walk1(v, n.Const)
	case *ArrayAccessExpr:
		walk1(v, n.Array)
		walk1(v, n.Index)
	case *EncapsedStringExpr:
		for _, p := range n.Parts {
			walk1(v, p)
		}
	case *HeredocExpr:
		for _, p := range n.Parts {
			walk1(v, p)
		}
	case *ClosureExpr:
		for _, p := range n.Params {
			walk1(v, p)
		}
		for _, u := range n.Uses {
			walk1(v, u.Var)
		}
		walk1(v, n.ReturnType)
		walk1(v, n.Body)
	case *ArrowFuncExpr:
		for _, p := range n.Params {
			walk1(v, p)
		}
		walk1(v, n.ReturnType)
		walk1(v, n.Body)
	case *YieldExpr:
		walk1(v, n.Key)
		walk1(v, n.Value)
	case *YieldFromExpr:
		walk1(v, n.Expr)
	case *ThrowExpr:
		walk1(v, n.Expr)
	case *PrintExpr:
		walk1(v, n.Expr)
	case *IncludeExpr:
		walk1(v, n.Expr)
	case *IssetExpr:
		for _, e := range n.Vars {
			walk1(v, e)
		}
	case *EmptyExpr:
		walk1(v, n.Expr)
	case *EvalExpr:
		walk1(v, n.Expr)
	case *ExitExpr:
		walk1(v, n.Expr)
	case *ListExpr:
		for _, item := range n.Items {
			walk1(v, item)
		}
	case *MatchExpr:
		walk1(v, n.Cond)
		for _, arm := range n.Arms {
			walk1(v, arm)
		}
	case *MatchArm:
		for _, c := range n.Conds {
			walk1(v, c)
		}
		walk1(v, n.Body)
	case *AssignExpr:
		walk1(v, n.Var)
		walk1(v, n.Value)
	case *AssignRefExpr:
		walk1(v, n.Var)
		walk1(v, n.Value)
	case *ErrorSuppressExpr:
		walk1(v, n.Expr)
	case *ShellExecExpr:
		for _, p := range n.Parts {
			walk1(v, p)
		}
	case *ParenExpr:
		walk1(v, n.X)

	// Statements
	case *BadStmt, *EmptyStmt, *InlineHTMLStmt, *HaltCompilerStmt:
		// leaves
	case *ExprStmt:
		walk1(v, n.Expr)
	case *BlockStmt:
		for _, s := range n.Stmts {
			walk1(v, s)
		}
	case *IfStmt:
		walk1(v, n.Cond)
		walk1(v, n.Body)
		for _, ei := range n.ElseIfs {
			walk1(v, ei)
		}
		walk1(v, n.Else)
	case *ElseIfClause:
		walk1(v, n.Cond)
		walk1(v, n.Body)
	case *ElseClause:
		walk1(v, n.Body)
	case *SwitchStmt:
		walk1(v, n.Cond)
		for _, c := range n.Cases {
			walk1(v, c)
		}
	case *CaseClause:
		walk1(v, n.Cond)
		for _, s := range n.Stmts {
			walk1(v, s)
		}
	case *WhileStmt:
		walk1(v, n.Cond)
		walk1(v, n.Body)
	case *DoWhileStmt:
		walk1(v, n.Body)
		walk1(v, n.Cond)
	case *ForStmt:
		for _, e := range n.Init {
			walk1(v, e)
		}
		for _, e := range n.Cond {
			walk1(v, e)
		}
		for _, e := range n.Loop {
			walk1(v, e)
		}
		walk1(v, n.Body)
	case *ForeachStmt:
		walk1(v, n.Expr)
		walk1(v, n.KeyVar)
		walk1(v, n.ValueVar)
		walk1(v, n.Body)
	case *BreakStmt:
		walk1(v, n.Num)
	case *ContinueStmt:
		walk1(v, n.Num)
	case *ReturnStmt:
		walk1(v, n.Result)
	case *GotoStmt:
		walk1(v, n.Label)
	case *LabelStmt:
		walk1(v, n.Label)
	case *TryStmt:
		walk1(v, n.Body)
		for _, c := range n.Catches {
			walk1(v, c)
		}
		walk1(v, n.Finally)
	case *CatchClause:
		for _, t := range n.Types {
			walk1(v, t)
		}
		walk1(v, n.Var)
		walk1(v, n.Body)
	case *FinallyClause:
		walk1(v, n.Body)
	case *ThrowStmt:
		walk1(v, n.Expr)
	case *EchoStmt:
		for _, e := range n.Exprs {
			walk1(v, e)
		}
	case *GlobalStmt:
		for _, va := range n.Vars {
			walk1(v, va)
		}
	case *StaticVarStmt:
		for _, sv := range n.Vars {
			walk1(v, sv)
		}
	case *StaticVar:
		walk1(v, n.Var)
		walk1(v, n.Default)
	case *UnsetStmt:
		for _, e := range n.Vars {
			walk1(v, e)
		}
	case *DeclareStmt:
		for _, d := range n.Directives {
			walk1(v, d)
		}
		walk1(v, n.Body)
	case *DeclareDirective:
		walk1(v, n.Name)
		walk1(v, n.Value)

	// Declarations
	case *BadDecl:
		// leaf
	case *NamespaceDecl:
		walk1(v, n.Name)
		for _, s := range n.Stmts {
			walk1(v, s)
		}
	case *UseDecl:
		for _, u := range n.Uses {
			walk1(v, u)
		}
	case *UseClause:
		walk1(v, n.Name)
		walk1(v, n.Alias)
	case *ConstDecl:
		for _, c := range n.Consts {
			walk1(v, c)
		}
	case *ConstSpec:
		walk1(v, n.Name)
		walk1(v, n.Value)
	case *FunctionDecl:
		walk1(v, n.Name)
		for _, p := range n.Params {
			walk1(v, p)
		}
		walk1(v, n.ReturnType)
		walk1(v, n.Body)
	case *ClassDecl:
		walk1(v, n.Name)
		walk1(v, n.Extends)
		for _, i := range n.Implements {
			walk1(v, i)
		}
		for _, m := range n.Members {
			walk1(v, m)
		}
	case *InterfaceDecl:
		walk1(v, n.Name)
		for _, e := range n.Extends {
			walk1(v, e)
		}
		for _, m := range n.Members {
			walk1(v, m)
		}
	case *TraitDecl:
		walk1(v, n.Name)
		for _, m := range n.Members {
			walk1(v, m)
		}
	case *EnumDecl:
		walk1(v, n.Name)
		walk1(v, n.BackingType)
		for _, i := range n.Implements {
			walk1(v, i)
		}
		for _, m := range n.Members {
			walk1(v, m)
		}
	case *PropertyDecl:
		walk1(v, n.Type)
		for _, p := range n.Props {
			walk1(v, p)
		}
	case *PropertyItem:
		walk1(v, n.Var)
		walk1(v, n.Default)
		walk1(v, n.Hooks)
	case *PropertyHooks:
		walk1(v, n.Get)
		walk1(v, n.Set)
	case *PropertyHook:
		walk1(v, n.Name)
		for _, p := range n.Params {
			walk1(v, p)
		}
		walk1(v, n.Body)
	case *MethodDecl:
		walk1(v, n.Name)
		for _, p := range n.Params {
			walk1(v, p)
		}
		walk1(v, n.ReturnType)
		walk1(v, n.Body)
	case *ClassConstDecl:
		for _, c := range n.Consts {
			walk1(v, c)
		}
	case *TraitUseDecl:
		for _, t := range n.Traits {
			walk1(v, t)
		}
		for _, a := range n.Adaptations {
			walk1(v, a)
		}
	case *TraitAdaptation:
		walk1(v, n.Trait)
		walk1(v, n.Method)
		for _, i := range n.Insteadof {
			walk1(v, i)
		}
		walk1(v, n.Alias)
	case *EnumCaseDecl:
		walk1(v, n.Name)
		walk1(v, n.Value)

	// Types and parameters
	case *TypeExpr:
		walk1(v, n.Type)
	case *SimpleType:
		// leaf
	case *UnionType:
		for _, t := range n.Types {
			walk1(v, t)
		}
	case *IntersectionType:
		for _, t := range n.Types {
			walk1(v, t)
		}
	case *Parameter:
		walk1(v, n.Type)
		walk1(v, n.Var)
		walk1(v, n.Default)
	case *Attribute:
		walk1(v, n.Name)
		walk1(v, n.Args)
	case *AttributeGroup:
		for _, a := range n.Attrs {
			walk1(v, a)
		}

	default:
		// Unknown node kind: nothing to recurse into. Node types added
		// to the ast package without a matching case here simply stop
		// the walk at that point instead of panicking.
	}
}
