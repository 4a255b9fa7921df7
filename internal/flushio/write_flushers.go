package flushio

import "io"

// Tee combines any number of WriteFlusher-s into one that writes into and
// flushes all of them, in order. Nil entries are skipped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	switch all := appendFlushers(nil, wfs...); len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type teeFlushers []WriteFlusher

func (wfs teeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs teeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendFlushers(all teeFlushers, some ...WriteFlusher) teeFlushers {
	for _, one := range some {
		if many, ok := one.(teeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}
