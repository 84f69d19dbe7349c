package render

// Full-screen quad vertex shader: clip-space positions straight through.
const vertexSrc = `#version 410 core

layout(location = 0) in vec2 a_position;

out vec2 vUV;

void main() {
    vUV = a_position * 0.5 + 0.5;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
` + "\x00"

// Gooey fragment shader: one rounded drip per column hanging from the top
// edge, smooth-unioned with its neighbours. The drips lengthen with scroll
// progress until they cover the window.
const gooeyFragSrc = `#version 410 core

uniform float u_time;
uniform float u_scroll_progr;
uniform vec2 u_resolution;
uniform float u_col_width;
uniform float u_speed;
uniform float u_scale;
uniform float u_seed;
uniform vec3 u_color;

in vec2 vUV;
out vec4 FragColor;

float hash(float n) {
    return fract(sin(n * 12.9898 + u_seed * 78.233) * 43758.5453);
}

float noise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    f = f * f * (3.0 - 2.0 * f);
    float n = i.x + i.y * 57.0;
    return mix(mix(hash(n), hash(n + 1.0), f.x),
               mix(hash(n + 57.0), hash(n + 58.0), f.x), f.y);
}

float smin(float a, float b, float k) {
    float h = clamp(0.5 + 0.5 * (b - a) / k, 0.0, 1.0);
    return mix(b, a, h) - k * h * (1.0 - h);
}

// Tip height of column c in uv units (1 = top edge).
float columnTip(float c, float t) {
    float r = hash(c);
    float reach = u_scroll_progr * (1.3 + 0.7 * r);
    return 1.0 - reach - 0.05 * sin(t * (1.0 + 2.0 * r) + 6.2831 * r);
}

void main() {
    vec2 uv = gl_FragCoord.xy / u_resolution;
    float aspect = u_resolution.x / u_resolution.y;
    float t = u_time * 0.001 * u_speed;

    vec2 p = vec2(uv.x * aspect, uv.y) / u_scale;
    float c = floor(p.x / u_col_width);
    float top = 1.2 / u_scale;
    float radius = 0.42 * u_col_width;

    float d = 1e3;
    for (int i = -1; i <= 1; i++) {
        float ci = c + float(i);
        float cx = (ci + 0.5) * u_col_width;
        float tip = columnTip(ci, t) / u_scale;
        float py = clamp(p.y, tip, top);
        float di = length(vec2(p.x - cx, p.y - py)) - radius;
        d = smin(d, di, 0.35 * u_col_width);
    }
    d += 0.08 * u_col_width * (noise(vec2(p.x * 3.0, p.y * 3.0 - t * 2.0)) - 0.5);

    float fw = max(fwidth(d), 1e-4);
    float alpha = smoothstep(fw, -fw, d);
    float rim = smoothstep(-radius, 0.0, d);
    vec3 col = u_color * mix(0.75, 1.35, rim);

    FragColor = vec4(col, alpha);
}
` + "\x00"

// quadVerts is a 4-vertex triangle strip covering clip space.
var quadVerts = [8]float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
