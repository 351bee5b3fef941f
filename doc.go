/*
Package enumerable adds indexed traversal to anything that can enumerate its
elements through a single Each method.

Eager example:

	var s containers.Slice[int] = []int{2, 5, 3}
	_, err := enumerable.EachWithIndex[int](s, func(e, i int) error {
		fmt.Println(i, e)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

Lazy example:

	pairs, err := enumerable.WithIndex[int](s).ToSlice()
	if err != nil {
		log.Fatal(err)
	}

*/
package enumerable
