package internal

import "testing"

func TestResolverDuplicateLocalIsStaticError(t *testing.T) {
	checkStaticError(t, `
	{
		var a = 1;
		var a = 2;
	}
	`)
}

func TestResolverDuplicateGlobalIsAllowed(t *testing.T) {
	checkPrint(t, `
	var a = 1;
	var a = 2;
	print a;
	`, "2")
}

func TestResolverSelfReferentialInitializerIsStaticError(t *testing.T) {
	checkStaticError(t, `
	{
		var a = a;
	}
	`)
}

func TestResolverReturnOutsideFunctionIsStaticError(t *testing.T) {
	checkStaticError(t, `return 1;`)
}

func TestResolverReturnValueFromInitializerIsStaticError(t *testing.T) {
	checkStaticError(t, `
	class C {
		init() {
			return 1;
		}
	}
	`)
}

func TestResolverBareReturnFromInitializerIsAllowed(t *testing.T) {
	checkPrint(t, `
	class C {
		init() {
			return;
		}
	}
	print C().init;
	`, "<fn init>")
}

func TestResolverThisOutsideClassIsStaticError(t *testing.T) {
	checkStaticError(t, `print this;`)
}

func TestResolverSuperOutsideClassIsStaticError(t *testing.T) {
	checkStaticError(t, `print super.foo;`)
}

func TestResolverSuperWithoutSuperclassIsStaticError(t *testing.T) {
	checkStaticError(t, `
	class C {
		foo() {
			print super.foo;
		}
	}
	`)
}

func TestResolverClassInheritingFromItselfIsStaticError(t *testing.T) {
	checkStaticError(t, `class C < C {}`)
}

func TestResolverLexicalScopingFreezesClosureBinding(t *testing.T) {
	// The canonical closure-capture test: each `makeCounter()` call gets its
	// own `count` binding, resolved once by depth at definition time.
	checkPrint(t, `
	fun makeCounter() {
		var count = 0;
		fun counter() {
			count = count + 1;
			return count;
		}
		return counter;
	}
	var c1 = makeCounter();
	var c2 = makeCounter();
	print c1();
	print c1();
	print c2();
	`, "1\n2\n1")
}
