// Package tsast provides a small typed syntax tree for TypeScript and
// JavaScript modules.
//
// # Overview
//
// Sources are parsed with tree-sitter and lowered into a closed set of
// node variants. Only the parts of a module that component analysis
// needs are kept: classes with their members and decorators, top-level
// variable bindings, and the expressions reachable from them.
//
// # Usage
//
//	p := tsast.NewParser()
//	file, err := p.ParseFile(ctx, "my-element.ts", src)
//	if err != nil {
//	    return err
//	}
//	for _, class := range file.Classes {
//	    for _, member := range class.Members {
//	        fmt.Println(class.Name, member.Name)
//	    }
//	}
//
// # Expressions
//
// Expr and ObjectMember are sealed interfaces. Consumers dispatch with a
// type switch; anything without a dedicated variant becomes *OtherExpr,
// which still carries its exact source text.
package tsast
