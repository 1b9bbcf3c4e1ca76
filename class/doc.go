// Package class builds single-inheritance types on top of object's
// prototype chains.
//
// [Inherit] takes a parent [Constructor] and a members object and returns a
// [Class]. Instances created with [Class.New] look up missing properties on
// the class prototype, then on the parent's prototype, and so on up to
// [object.Prototype]:
//
//	Point, _ := class.Inherit(class.Object, object.New().
//	    Set(class.InitializeKey, object.Func(func(this *object.Object, args ...any) any {
//	        this.Set("x", args[0]).Set("y", args[1])
//	        return nil
//	    })))
//	p, _ := Point.New(1, 2)
//	class.InstanceOf(p, Point)        // → true
//	class.InstanceOf(p, class.Object) // → true
//
// Every class exposes its parent's prototype through [Class.Superclass] and
// can be subclassed again with [Class.Extend].
package class
