package parsetree

import "strings"

// buildIntrinsic validates and shapes the raw argument value for one
// intrinsic-function key into an Intrinsic, per spec.md §4.1's
// "Intrinsic resolution" contract.
func buildIntrinsic(kind IntrinsicKind, raw Value, path string) (*Intrinsic, error) {
	switch kind {
	case Ref:
		name, err := asLiteralString(raw, path, "Ref")
		if err != nil {
			return nil, err
		}
		return &Intrinsic{Kind: Ref, RefName: name}, nil

	case ConditionRef:
		name, err := asLiteralString(raw, path, "Condition")
		if err != nil {
			return nil, err
		}
		return &Intrinsic{Kind: ConditionRef, RefName: name}, nil

	case Sub:
		switch raw.Kind {
		case KindString:
			return &Intrinsic{Kind: Sub, SubTemplate: raw.String}, nil
		case KindArray:
			if len(raw.Array) != 2 || raw.Array[0].Kind != KindString || raw.Array[1].Kind != KindObject {
				return nil, newParseError(TypeMismatch, path, "Fn::Sub array form requires [template, {replacements}]")
			}
			return &Intrinsic{Kind: Sub, SubTemplate: raw.Array[0].String, SubReplacements: raw.Array[1].Object}, nil
		default:
			return nil, newParseError(TypeMismatch, path, "Fn::Sub requires a string or [string, object]")
		}

	case GetAtt:
		switch raw.Kind {
		case KindString:
			parts := strings.SplitN(raw.String, ".", 2)
			if len(parts) != 2 {
				return nil, newParseError(BadGetAttArity, path, "Fn::GetAtt dotted string must be \"Logical.Attr\", got %q", raw.String)
			}
			return &Intrinsic{Kind: GetAtt, GetAttLogical: parts[0], GetAttAttribute: parts[1]}, nil
		case KindArray:
			if len(raw.Array) != 2 || raw.Array[0].Kind != KindString || raw.Array[1].Kind != KindString {
				return nil, newParseError(BadGetAttArity, path, "Fn::GetAtt list form must be [\"Logical\", \"Attr\"]")
			}
			return &Intrinsic{Kind: GetAtt, GetAttLogical: raw.Array[0].String, GetAttAttribute: raw.Array[1].String}, nil
		default:
			return nil, newParseError(BadGetAttArity, path, "Fn::GetAtt requires a dotted string or a two-element list")
		}

	case FindInMap:
		return requireArgs(FindInMap, raw, path, 3, "Fn::FindInMap")

	case Join:
		return requireArgs(Join, raw, path, 2, "Fn::Join")

	case Select:
		return requireArgs(Select, raw, path, 2, "Fn::Select")

	case Split:
		return requireArgs(Split, raw, path, 2, "Fn::Split")

	case Cidr:
		return requireArgs(Cidr, raw, path, 3, "Fn::Cidr")

	case If:
		ir, err := requireArgs(If, raw, path, 3, "Fn::If")
		if err != nil {
			return nil, err
		}
		if ir.Args[0].Kind != KindString {
			return nil, newParseError(TypeMismatch, path, "Fn::If condition name must be a literal string")
		}
		return ir, nil

	case Equals:
		return requireArgs(Equals, raw, path, 2, "Fn::Equals")

	case And, Or:
		if raw.Kind != KindArray || len(raw.Array) < 2 {
			return nil, newParseError(TypeMismatch, path, "%s requires a list of at least two conditions", kind)
		}
		return &Intrinsic{Kind: kind, Args: raw.Array}, nil

	case Not:
		if raw.Kind != KindArray || len(raw.Array) != 1 {
			return nil, newParseError(TypeMismatch, path, "Fn::Not requires a single-element list")
		}
		return &Intrinsic{Kind: Not, Args: raw.Array}, nil

	case Base64, GetAZs, ImportValue:
		return &Intrinsic{Kind: kind, Args: []Value{raw}}, nil

	default:
		return nil, newParseError(UnknownIntrinsic, path, "unrecognized intrinsic kind")
	}
}

func requireArgs(kind IntrinsicKind, raw Value, path string, n int, label string) (*Intrinsic, error) {
	if raw.Kind != KindArray || len(raw.Array) != n {
		return nil, newParseError(TypeMismatch, path, "%s requires a %d-element list", label, n)
	}
	return &Intrinsic{Kind: kind, Args: raw.Array}, nil
}

func asLiteralString(v Value, path, label string) (string, error) {
	if v.Kind != KindString {
		return "", newParseError(TypeMismatch, path, "%s requires a literal string name", label)
	}
	return v.String, nil
}
