// Package seq filters sequences of containers down to their present values.
//
// Every function takes and returns an iter.Seq, so sources such as
// slices.Values or maps.Values plug in directly and results feed
// slices.Collect. Filtering is lazy: nothing is buffered, reordered or
// deduplicated, and a result can be ranged over again whenever its source
// can.
//
// - MaybeValues/MaybeValuesWhere: values of non-empty Maybes
// - TryValues/TryValuesWhere: values of successful Trys
// - TryErrors: causes of failed Trys
// - LeftValues/RightValues (and *Where): one side of Eithers
package seq
