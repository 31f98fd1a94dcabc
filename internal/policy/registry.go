package policy

import "fmt"

// New builds the policy named by the -a algorithm letter: f=FIFO,
// r=Random, c=Clock, e=NRU (Enhanced Second Chance), a=Aging, w=WorkingSet.
// numFrames sizes the per-frame state Aging and WorkingSet carry; stream
// backs Random and is ignored for every other letter.
func New(letter byte, numFrames int, stream *RandomStream) (Policy, error) {
	switch letter {
	case 'f':
		return &FIFO{}, nil
	case 'r':
		if stream == nil {
			return nil, fmt.Errorf("random policy requires a random-number file")
		}
		return NewRandom(stream), nil
	case 'c':
		return &Clock{}, nil
	case 'e':
		return &NRU{}, nil
	case 'a':
		return NewAging(numFrames), nil
	case 'w':
		return NewWorkingSet(numFrames), nil
	default:
		return nil, fmt.Errorf("unknown algorithm letter %q", letter)
	}
}
