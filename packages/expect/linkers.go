package expect

// Linker words. They do nothing and return the receiver so chains read like
// English: expect.Int(3).To().Be().At().Least(2).

func (e *IntExpectation) To() *IntExpectation { return e }

func (e *IntExpectation) Be() *IntExpectation { return e }

func (e *IntExpectation) Been() *IntExpectation { return e }

func (e *IntExpectation) Is() *IntExpectation { return e }

func (e *IntExpectation) That() *IntExpectation { return e }

func (e *IntExpectation) Which() *IntExpectation { return e }

func (e *IntExpectation) And() *IntExpectation { return e }

func (e *IntExpectation) Has() *IntExpectation { return e }

func (e *IntExpectation) Have() *IntExpectation { return e }

func (e *IntExpectation) With() *IntExpectation { return e }

func (e *IntExpectation) At() *IntExpectation { return e }

func (e *IntExpectation) Of() *IntExpectation { return e }

func (e *IntExpectation) Same() *IntExpectation { return e }

func (e *LongExpectation) To() *LongExpectation { return e }

func (e *LongExpectation) Be() *LongExpectation { return e }

func (e *LongExpectation) Been() *LongExpectation { return e }

func (e *LongExpectation) Is() *LongExpectation { return e }

func (e *LongExpectation) That() *LongExpectation { return e }

func (e *LongExpectation) Which() *LongExpectation { return e }

func (e *LongExpectation) And() *LongExpectation { return e }

func (e *LongExpectation) Has() *LongExpectation { return e }

func (e *LongExpectation) Have() *LongExpectation { return e }

func (e *LongExpectation) With() *LongExpectation { return e }

func (e *LongExpectation) At() *LongExpectation { return e }

func (e *LongExpectation) Of() *LongExpectation { return e }

func (e *LongExpectation) Same() *LongExpectation { return e }

func (e *DoubleExpectation) To() *DoubleExpectation { return e }

func (e *DoubleExpectation) Be() *DoubleExpectation { return e }

func (e *DoubleExpectation) Been() *DoubleExpectation { return e }

func (e *DoubleExpectation) Is() *DoubleExpectation { return e }

func (e *DoubleExpectation) That() *DoubleExpectation { return e }

func (e *DoubleExpectation) Which() *DoubleExpectation { return e }

func (e *DoubleExpectation) And() *DoubleExpectation { return e }

func (e *DoubleExpectation) Has() *DoubleExpectation { return e }

func (e *DoubleExpectation) Have() *DoubleExpectation { return e }

func (e *DoubleExpectation) With() *DoubleExpectation { return e }

func (e *DoubleExpectation) At() *DoubleExpectation { return e }

func (e *DoubleExpectation) Of() *DoubleExpectation { return e }

func (e *DoubleExpectation) Same() *DoubleExpectation { return e }

func (e *BoolExpectation) To() *BoolExpectation { return e }

func (e *BoolExpectation) Be() *BoolExpectation { return e }

func (e *BoolExpectation) Been() *BoolExpectation { return e }

func (e *BoolExpectation) Is() *BoolExpectation { return e }

func (e *BoolExpectation) That() *BoolExpectation { return e }

func (e *BoolExpectation) Which() *BoolExpectation { return e }

func (e *BoolExpectation) And() *BoolExpectation { return e }

func (e *BoolExpectation) Has() *BoolExpectation { return e }

func (e *BoolExpectation) Have() *BoolExpectation { return e }

func (e *BoolExpectation) With() *BoolExpectation { return e }

func (e *BoolExpectation) At() *BoolExpectation { return e }

func (e *BoolExpectation) Of() *BoolExpectation { return e }

func (e *BoolExpectation) Same() *BoolExpectation { return e }
