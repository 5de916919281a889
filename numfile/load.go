package numfile

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbvec"
	"github.com/pkg/errors"
)

// ErrLoaderClosed is returned by Wait for a loader which has been closed
// without being started.
var ErrLoaderClosed = errors.New("rbvec: number file loader closed")

// Some file size thresholds for batch size defaults
const (
	oneKb     = 1024
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// defaultBatchSize is the number of values read between two published
// versions of a vector, if a Loader is created with batch size 0. It grows
// with the size of the file.
func defaultBatchSize(size int64) int {
	switch {
	case size < oneKb:
		return 16
	case size < tenKb:
		return 64
	case size < hundredKb:
		return 256
	case size < oneMb:
		return 1024
	}
	return 4096
}

// Load reads a file of numbers and returns them as a vector.
func Load(name string) (rbvec.Vector[float64], error) {
	nf, err := openFile(name)
	if err != nil {
		return rbvec.Vector[float64]{}, err
	}
	defer nf.file.Close()
	v := rbvec.Vector[float64]{}
	err = scan(nf.path, nf.file, func(x float64) error {
		v = v.Appended(x)
		return nil
	})
	if err != nil {
		return rbvec.Vector[float64]{}, err
	}
	tracer().Debugf("loaded %d numbers from %s", v.Len(), name)
	return v, nil
}

// Loader reads a file of numbers in the background. After every batch of
// values it publishes the current version of the vector to all subscribers.
// Subscribers which are busy miss intermediate versions, but the final
// version of a successful load is always delivered, even if it does not
// complete a batch.
//
// Usage:
//
//	l, err := numfile.NewLoader("temperatures.txt", 1000)
//	snapshots := l.Subscribe(ctx)
//	l.Start(ctx)
//	for v := range snapshots {
//	    ...                          // every v is a prefix of the final vector
//	}
//	v, err := l.Wait()
type Loader struct {
	nf      *numberFile
	batch   int
	cast    *caster.Caster // broadcaster for intermediate versions
	once    sync.Once // guards Start and Close
	done    chan struct{}
	vector  rbvec.Vector[float64] // result, valid after done is closed
	lastErr error                 // first error while loading
}

// NewLoader opens a file of numbers for asynchronous loading. Opening of the
// file is always done synchronously. Loading starts with a call to Start.
// A loader which is never started has to be closed with Close.
//
// If batch is 0, a batch size suitable for the size of the file is chosen.
func NewLoader(name string, batch int) (*Loader, error) {
	if batch < 0 {
		return nil, errors.Wrapf(rbvec.ErrIllegalArguments, "batch size %d", batch)
	}
	nf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if batch == 0 {
		batch = defaultBatchSize(nf.info.Size())
		tracer().Debugf("batch size for %s is %d", name, batch)
	}
	return &Loader{
		nf:    nf,
		batch: batch,
		cast:  caster.New(nil), // we will broadcast versions when batches are loaded
		done:  make(chan struct{}),
	}, nil
}

// LoadAsync creates a Loader for a file and starts loading right away.
// Clients who want to see every intermediate version should use NewLoader
// and subscribe before starting.
func LoadAsync(ctx context.Context, name string, batch int) (*Loader, error) {
	l, err := NewLoader(name, batch)
	if err != nil {
		return nil, err
	}
	l.Start(ctx)
	return l, nil
}

// Subscribe returns a channel of intermediate versions. The channel is closed
// when loading has finished or ctx is done.
//
// The channel buffers only the most recent version. A subscriber reading
// slowly, or not at all, skips versions but never stalls the loader. After
// a successful load, the last version received is the final vector.
func (l *Loader) Subscribe(ctx context.Context) <-chan rbvec.Vector[float64] {
	out := make(chan rbvec.Vector[float64], 1)
	sub, ok := l.cast.Sub(ctx, 1)
	if !ok { // caster already closed
		close(out)
		return out
	}
	go func() {
		defer func() { // keep the caster from blocking on us
			for {
				select {
				case _, ok := <-sub:
					if !ok {
						return
					}
				case <-l.done:
					return
				}
			}
		}()
		defer close(out)
		for {
			select {
			case msg, ok := <-sub:
				if !ok { // caster closed: loading has ended
					if ctx.Err() == nil {
						<-l.done
						if l.lastErr == nil {
							offer(out, l.vector)
						}
					}
					return
				}
				offer(out, msg.(rbvec.Vector[float64]))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// offer puts v into a channel with buffer size 1, replacing a version the
// subscriber has not read yet. The caller must be the only sender.
func offer(out chan rbvec.Vector[float64], v rbvec.Vector[float64]) {
	select {
	case <-out:
	default:
	}
	out <- v
}

// Start starts loading in a separate goroutine. Calling Start more than once
// has no effect. Cancelling ctx stops loading; Wait will then report the
// context's error.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.load(ctx)
	})
}

// Close releases the file and the subscriptions of a loader which has not
// been started. Subscription channels are closed and Wait returns
// ErrLoaderClosed. For a started loader, Close has no effect; cancel the
// context given to Start instead.
func (l *Loader) Close() error {
	var err error
	l.once.Do(func() {
		err = l.nf.file.Close()
		l.cast.Close()
		l.lastErr = ErrLoaderClosed
		close(l.done)
	})
	return err
}

// Wait blocks until loading has finished and returns the final vector. If
// an error occured, the vector holds the values loaded before the error.
func (l *Loader) Wait() (rbvec.Vector[float64], error) {
	<-l.done
	return l.vector, l.lastErr
}

func (l *Loader) load(ctx context.Context) {
	defer close(l.done)
	defer l.cast.Close()
	defer l.nf.file.Close()
	v := rbvec.Vector[float64]{}
	published := 0
	err := scan(l.nf.path, l.nf.file, func(x float64) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v = v.Appended(x)
		if v.Len()-published >= l.batch {
			tracer().Debugf("publishing version with %d numbers", v.Len())
			l.cast.TryPub(v) // busy subscribers miss this version
			published = v.Len()
		}
		return nil
	})
	l.vector, l.lastErr = v, err
	if err != nil {
		tracer().Errorf("loading %s: %v", l.nf.path, err)
	}
}
