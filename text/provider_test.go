package text

import "github.com/gogpu/vg"

// fakeProvider records texture operations without a GPU.
type fakeProvider struct {
	next    vg.TextureHandle
	sizes   map[vg.TextureHandle][2]int
	uploads []upload
}

type upload struct {
	handle     vg.TextureHandle
	x, y, w, h int
	data       []byte
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sizes: make(map[vg.TextureHandle][2]int)}
}

func (p *fakeProvider) CreateTexture(width, height int) (vg.TextureHandle, error) {
	p.next++
	p.sizes[p.next] = [2]int{width, height}
	return p.next, nil
}

func (p *fakeProvider) TextureSize(h vg.TextureHandle) (int, int, error) {
	size, ok := p.sizes[h]
	if !ok {
		return 0, 0, vg.ErrTextureNotFound
	}
	return size[0], size[1], nil
}

func (p *fakeProvider) UpdateTexture(h vg.TextureHandle, x, y, w, hgt int, data []byte) error {
	if _, ok := p.sizes[h]; !ok {
		return vg.ErrTextureNotFound
	}
	p.uploads = append(p.uploads, upload{handle: h, x: x, y: y, w: w, h: hgt, data: data})
	return nil
}
