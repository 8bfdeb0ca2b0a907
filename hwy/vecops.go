// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// vecReg is satisfied by pointers to the vector register types.
type vecReg[T Lanes, V any] interface {
	*V
	lanes() []T
	words() []uint64
}

// maskReg is satisfied by pointers to the mask register types.
type maskReg[M any] interface {
	*M
	get(i int) bool
	set(i int, on bool)
}

// wordMask is implemented by lane masks, whose register image lines up
// with the vector's, so Select and the mask logic can work on raw words.
type wordMask interface {
	words() []uint64
}

// vecEngine implements Ops once for every register width. The backends
// embed it with their own vector and mask types.
type vecEngine[T Lanes, V, M any, VP vecReg[T, V], MP maskReg[M]] struct{}

func (vecEngine[T, V, M, VP, MP]) NumLanes() int {
	var v V
	return len(VP(&v).lanes())
}

func (vecEngine[T, V, M, VP, MP]) Zero() V {
	var v V
	return v
}

func (vecEngine[T, V, M, VP, MP]) Splat(x T) V {
	var v V
	l := VP(&v).lanes()
	for i := range l {
		l[i] = x
	}
	return v
}

func (vecEngine[T, V, M, VP, MP]) Iota(start T) V {
	var v V
	l := VP(&v).lanes()
	for i := range l {
		l[i] = start + T(i)
	}
	return v
}

func (e vecEngine[T, V, M, VP, MP]) FromLanes(lanes []T) V { return e.Load(lanes) }

func (vecEngine[T, V, M, VP, MP]) GetLane(v V, i int) T { return VP(&v).lanes()[i] }

func (vecEngine[T, V, M, VP, MP]) SetLane(v V, i int, x T) V {
	VP(&v).lanes()[i] = x
	return v
}

func (vecEngine[T, V, M, VP, MP]) Load(src []T) V {
	var v V
	l := VP(&v).lanes()
	copy(l, src[:len(l)])
	return v
}

func (vecEngine[T, V, M, VP, MP]) Store(v V, dst []T) {
	l := VP(&v).lanes()
	copy(dst[:len(l)], l)
}

func (vecEngine[T, V, M, VP, MP]) PartialLoad(src []T) V {
	var v V
	copy(VP(&v).lanes(), src)
	return v
}

func (vecEngine[T, V, M, VP, MP]) PartialStore(v V, dst []T) {
	copy(dst, VP(&v).lanes())
}

func (vecEngine[T, V, M, VP, MP]) PartialLoadLast(src []T) V {
	var v V
	l := VP(&v).lanes()
	k := min(len(src), len(l))
	copy(l[len(l)-k:], src[len(src)-k:])
	return v
}

func (vecEngine[T, V, M, VP, MP]) PartialStoreLast(v V, dst []T) {
	l := VP(&v).lanes()
	k := min(len(dst), len(l))
	copy(dst[len(dst)-k:], l[len(l)-k:])
}

func (vecEngine[T, V, M, VP, MP]) MaskLoad(m M, src []T) V {
	var v V
	l := VP(&v).lanes()
	mp := MP(&m)
	for i := range l {
		if mp.get(i) {
			l[i] = src[i]
		}
	}
	return v
}

func (vecEngine[T, V, M, VP, MP]) MaskStore(m M, v V, dst []T) {
	l := VP(&v).lanes()
	mp := MP(&m)
	for i := range l {
		if mp.get(i) {
			dst[i] = l[i]
		}
	}
}

func (e vecEngine[T, V, M, VP, MP]) FirstN(k int) M { return e.MaskBetween(0, k) }

func (e vecEngine[T, V, M, VP, MP]) MaskBetween(start, end int) M {
	var m M
	mp := MP(&m)
	start = max(start, 0)
	end = min(end, e.NumLanes())
	for i := start; i < end; i++ {
		mp.set(i, true)
	}
	return m
}

func (vecEngine[T, V, M, VP, MP]) unary(a V, f func(T) T) V {
	var r V
	rl, al := VP(&r).lanes(), VP(&a).lanes()
	for i := range rl {
		rl[i] = f(al[i])
	}
	return r
}

func (vecEngine[T, V, M, VP, MP]) binary(a, b V, f func(T, T) T) V {
	var r V
	rl, al, bl := VP(&r).lanes(), VP(&a).lanes(), VP(&b).lanes()
	for i := range rl {
		rl[i] = f(al[i], bl[i])
	}
	return r
}

func (vecEngine[T, V, M, VP, MP]) words(a, b V, f func(x, y uint64) uint64) V {
	var r V
	rw, aw, bw := VP(&r).words(), VP(&a).words(), VP(&b).words()
	for i := range rw {
		rw[i] = f(aw[i], bw[i])
	}
	return r
}

func (vecEngine[T, V, M, VP, MP]) compare(a, b V, f func(T, T) bool) M {
	var m M
	mp := MP(&m)
	al, bl := VP(&a).lanes(), VP(&b).lanes()
	for i := range al {
		mp.set(i, f(al[i], bl[i]))
	}
	return m
}

func (e vecEngine[T, V, M, VP, MP]) Add(a, b V) V { return e.binary(a, b, addLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Sub(a, b V) V { return e.binary(a, b, subLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Mul(a, b V) V { return e.binary(a, b, mulLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Div(a, b V) V { return e.binary(a, b, divLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Min(a, b V) V { return e.binary(a, b, minLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Max(a, b V) V { return e.binary(a, b, maxLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Neg(a V) V    { return e.unary(a, negLane[T]) }
func (e vecEngine[T, V, M, VP, MP]) Abs(a V) V    { return e.unary(a, absLane[T]) }

func (vecEngine[T, V, M, VP, MP]) MulAdd(a, b, c V) V {
	var r V
	rl, al, bl, cl := VP(&r).lanes(), VP(&a).lanes(), VP(&b).lanes(), VP(&c).lanes()
	for i := range rl {
		rl[i] = mulAddLane(al[i], bl[i], cl[i])
	}
	return r
}

func (vecEngine[T, V, M, VP, MP]) WideningMul(a, b V) (lo, hi V) {
	ll, hl := VP(&lo).lanes(), VP(&hi).lanes()
	al, bl := VP(&a).lanes(), VP(&b).lanes()
	for i := range ll {
		ll[i], hl[i] = wideningMulLane(al[i], bl[i])
	}
	return lo, hi
}

func (e vecEngine[T, V, M, VP, MP]) And(a, b V) V {
	return e.words(a, b, func(x, y uint64) uint64 { return x & y })
}

func (e vecEngine[T, V, M, VP, MP]) Or(a, b V) V {
	return e.words(a, b, func(x, y uint64) uint64 { return x | y })
}

func (e vecEngine[T, V, M, VP, MP]) Xor(a, b V) V {
	return e.words(a, b, func(x, y uint64) uint64 { return x ^ y })
}

func (e vecEngine[T, V, M, VP, MP]) AndNot(a, b V) V {
	return e.words(a, b, func(x, y uint64) uint64 { return ^x & y })
}

func (vecEngine[T, V, M, VP, MP]) Not(a V) V {
	w := VP(&a).words()
	for i := range w {
		w[i] = ^w[i]
	}
	return a
}

func (e vecEngine[T, V, M, VP, MP]) Equal(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x == y })
}

func (e vecEngine[T, V, M, VP, MP]) NotEqual(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x != y })
}

func (e vecEngine[T, V, M, VP, MP]) Less(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x < y })
}

func (e vecEngine[T, V, M, VP, MP]) LessEqual(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x <= y })
}

func (e vecEngine[T, V, M, VP, MP]) Greater(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x > y })
}

func (e vecEngine[T, V, M, VP, MP]) GreaterEqual(a, b V) M {
	return e.compare(a, b, func(x, y T) bool { return x >= y })
}

func (vecEngine[T, V, M, VP, MP]) Select(m M, a, b V) V {
	if wm, ok := any(MP(&m)).(wordMask); ok {
		mw := wm.words()
		aw, bw := VP(&a).words(), VP(&b).words()
		for i := range aw {
			aw[i] = mw[i]&aw[i] | ^mw[i]&bw[i]
		}
		return a
	}
	mp := MP(&m)
	al, bl := VP(&a).lanes(), VP(&b).lanes()
	for i := range al {
		if !mp.get(i) {
			al[i] = bl[i]
		}
	}
	return a
}

func (e vecEngine[T, V, M, VP, MP]) maskLogic(a, b M, f func(x, y bool) bool) M {
	var r M
	rp, ap, bp := MP(&r), MP(&a), MP(&b)
	for i := range e.NumLanes() {
		rp.set(i, f(ap.get(i), bp.get(i)))
	}
	return r
}

func (e vecEngine[T, V, M, VP, MP]) MaskAnd(a, b M) M {
	return e.maskLogic(a, b, func(x, y bool) bool { return x && y })
}

func (e vecEngine[T, V, M, VP, MP]) MaskOr(a, b M) M {
	return e.maskLogic(a, b, func(x, y bool) bool { return x || y })
}

func (e vecEngine[T, V, M, VP, MP]) MaskXor(a, b M) M {
	return e.maskLogic(a, b, func(x, y bool) bool { return x != y })
}

func (e vecEngine[T, V, M, VP, MP]) MaskAndNot(a, b M) M {
	return e.maskLogic(a, b, func(x, y bool) bool { return !x && y })
}

func (e vecEngine[T, V, M, VP, MP]) MaskNot(m M) M {
	return e.maskLogic(m, m, func(x, _ bool) bool { return !x })
}

func (e vecEngine[T, V, M, VP, MP]) CountTrue(m M) int {
	mp := MP(&m)
	n := 0
	for i := range e.NumLanes() {
		if mp.get(i) {
			n++
		}
	}
	return n
}

func (e vecEngine[T, V, M, VP, MP]) FirstTrue(m M) int {
	mp := MP(&m)
	n := e.NumLanes()
	for i := range n {
		if mp.get(i) {
			return i
		}
	}
	return n
}

func (e vecEngine[T, V, M, VP, MP]) AllTrue(m M) bool { return e.CountTrue(m) == e.NumLanes() }
func (e vecEngine[T, V, M, VP, MP]) AnyTrue(m M) bool { return e.FirstTrue(m) < e.NumLanes() }

func (e vecEngine[T, V, M, VP, MP]) MaskBits(m M) uint64 {
	mp := MP(&m)
	var b uint64
	for i := range e.NumLanes() {
		if mp.get(i) {
			b |= 1 << uint(i)
		}
	}
	return b
}

func (vecEngine[T, V, M, VP, MP]) RotateRight(v V, amount int) V {
	var r V
	rl, vl := VP(&r).lanes(), VP(&v).lanes()
	n := len(vl)
	for i := range vl {
		rl[wrapIndex(i+amount, n)] = vl[i]
	}
	return r
}

func (e vecEngine[T, V, M, VP, MP]) RotateLeft(v V, amount int) V {
	return e.RotateRight(v, -amount)
}

func (vecEngine[T, V, M, VP, MP]) Reverse(v V) V {
	l := VP(&v).lanes()
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
	return v
}

func (e vecEngine[T, V, M, VP, MP]) Broadcast(v V, i int) V {
	return e.Splat(VP(&v).lanes()[i])
}

func (vecEngine[T, V, M, VP, MP]) interleave(a, b V, from int) V {
	var r V
	rl, al, bl := VP(&r).lanes(), VP(&a).lanes(), VP(&b).lanes()
	for i := range len(rl) / 2 {
		rl[2*i] = al[from+i]
		rl[2*i+1] = bl[from+i]
	}
	return r
}

func (e vecEngine[T, V, M, VP, MP]) InterleaveLower(a, b V) V { return e.interleave(a, b, 0) }
func (e vecEngine[T, V, M, VP, MP]) InterleaveUpper(a, b V) V {
	return e.interleave(a, b, e.NumLanes()/2)
}

func (vecEngine[T, V, M, VP, MP]) Shuffle(v V, idx []int) V {
	var r V
	rl, vl := VP(&r).lanes(), VP(&v).lanes()
	n := len(vl)
	_ = idx[n-1]
	for i := range rl {
		rl[i] = vl[wrapIndex(idx[i], n)]
	}
	return r
}

func (vecEngine[T, V, M, VP, MP]) ReduceSum(v V) T     { return reduceTree(VP(&v).lanes(), addLane[T]) }
func (vecEngine[T, V, M, VP, MP]) ReduceProduct(v V) T { return reduceTree(VP(&v).lanes(), mulLane[T]) }
func (vecEngine[T, V, M, VP, MP]) ReduceMin(v V) T     { return reduceTree(VP(&v).lanes(), minLane[T]) }
func (vecEngine[T, V, M, VP, MP]) ReduceMax(v V) T     { return reduceTree(VP(&v).lanes(), maxLane[T]) }
