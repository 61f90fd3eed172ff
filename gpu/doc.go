// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu defines the narrow GPU contracts used to compose and draw
a scene: a named [Uniforms] sink for the active shader program, the
[TextureUploader] operations on 2D textures, and the decoded [Image]
pixels that get uploaded.

Implementations live in glgpu (OpenGL) and record (recording, for
tests and headless tracing).
*/
package gpu
